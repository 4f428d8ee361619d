package controllers

import (
	"errors"
	"net/http"

	"abc-retail/middleware"
	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary View cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err, "Failed to load cart")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved successfully", Data: cart})
}

// AddToCart godoc
// @Summary Add product to cart
// @Description Unknown products leave the cart unchanged
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Param row_key formData string true "Product row key"
// @Success 303 "Redirect to /products"
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		redirect(c, "/products")
		return
	}

	if _, err := ctrl.cartService.Add(c.Request.Context(), middleware.SessionID(c), req.RowKey); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			respondError(c, err, "Failed to update cart")
			return
		}
		zap.S().Debugw("ignoring unknown product", "product", req.RowKey)
	}
	redirect(c, "/products")
}

// RemoveFromCart godoc
// @Summary Remove product from cart
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Param row_key formData string true "Product row key"
// @Success 303 "Redirect to /cart"
// @Router /cart/remove [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		redirect(c, "/cart")
		return
	}

	if _, err := ctrl.cartService.Remove(c.Request.Context(), middleware.SessionID(c), req.RowKey); err != nil {
		respondError(c, err, "Failed to update cart")
		return
	}
	redirect(c, "/cart")
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Success 303 "Redirect to /cart"
// @Router /cart/clear [post]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, err, "Failed to clear cart")
		return
	}
	redirect(c, "/cart")
}
