package services

import (
	"context"
	"encoding/json"
	"fmt"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"

	"go.uber.org/zap"
)

// CartService keeps the shopping cart of each browser session in the session store.
// Concurrent writes to one session are last-write-wins.
type CartService struct {
	sessions libs.SessionStore
	products *repositories.ProductRepository
}

func NewCartService(sessions libs.SessionStore, products *repositories.ProductRepository) *CartService {
	return &CartService{sessions: sessions, products: products}
}

func (s *CartService) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	raw, ok, err := s.sessions.Get(ctx, sessionID, models.CartSessionKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok || raw == "" {
		return models.Cart{}, nil
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		zap.S().Warnw("discarding unreadable cart", "session", sessionID, "error", err)
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, sessionID string, cart models.Cart) error {
	if cart == nil {
		cart = models.Cart{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.sessions.Set(ctx, sessionID, models.CartSessionKey, string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Add puts one unit of the product in the cart; an unknown product leaves the cart untouched.
func (s *CartService) Add(ctx context.Context, sessionID, productRef string) (models.Cart, error) {
	product, err := s.products.GetProductByID(ctx, productRef)
	if err != nil {
		return nil, err
	}

	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.IndexOf(productRef); i >= 0 {
		cart[i].Quantity++
	} else {
		cart = append(cart, models.CartLineItem{
			RowKey:      product.RowKey,
			ProductName: product.ProductName,
			Price:       product.Price,
			Quantity:    1,
		})
	}

	return cart, s.save(ctx, sessionID, cart)
}

func (s *CartService) Remove(ctx context.Context, sessionID, productRef string) (models.Cart, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.IndexOf(productRef); i >= 0 {
		cart = append(cart[:i], cart[i+1:]...)
	}

	return cart, s.save(ctx, sessionID, cart)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.save(ctx, sessionID, models.Cart{})
}

func (s *CartService) View(ctx context.Context, sessionID string) (models.CartView, error) {
	cart, err := s.Load(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}
	return models.CartView{Items: cart, Total: cart.Total()}, nil
}
