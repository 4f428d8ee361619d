package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ProductImagesContainer = "productimages"

type ProductImage struct {
	Filename string
	Content  io.Reader
}

type ProductService struct {
	productRepo *repositories.ProductRepository
	blobs       libs.BlobStore
	audit       *AuditService
}

// NewProductService wires the catalog; blobs may be nil, which disables product creation.
func NewProductService(productRepo *repositories.ProductRepository, blobs libs.BlobStore, audit *AuditService) *ProductService {
	return &ProductService{productRepo: productRepo, blobs: blobs, audit: audit}
}

func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" || category == models.AllCategories {
		return s.productRepo.GetAllProducts(ctx)
	}
	return s.productRepo.GetProductsByCategory(ctx, category)
}

func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	products, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range products {
		if p.Category != "" {
			counts[p.Category]++
		}
	}

	categories := make([]models.Category, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, models.Category{Name: name, ProductCount: count})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *ProductService) GetProduct(ctx context.Context, rowKey string) (*models.Product, error) {
	return s.productRepo.GetProductByID(ctx, rowKey)
}

func applyProductRequest(product *models.Product, req models.ProductRequest) error {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return validationError("price must be a number")
	}
	if price.IsNegative() {
		return validationError("price must not be negative")
	}
	if req.Quantity < 0 {
		return validationError("quantity must not be negative")
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return validationError("product name is required")
	}

	product.ProductName = strings.TrimSpace(req.ProductName)
	product.Category = strings.TrimSpace(req.Category)
	product.Description = req.Description
	product.Price = price
	product.Quantity = req.Quantity
	product.OutOfStock = req.OutOfStock
	return nil
}

// CreateProduct uploads the image to the product image container and stores the product row.
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest, image *ProductImage, sellerEmail string) (*models.Product, error) {
	if s.blobs == nil {
		return nil, fmt.Errorf("%w: blob store", models.ErrUnavailable)
	}
	if image == nil || image.Content == nil {
		return nil, validationError("please select an image file")
	}

	product := &models.Product{PartitionKey: models.ProductsPartition, SellerEmail: sellerEmail}
	if err := applyProductRequest(product, req); err != nil {
		return nil, err
	}

	blobName := utils.BlobName(image.Filename)
	url, err := s.blobs.Upload(ctx, ProductImagesContainer, blobName, image.Content)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}
	product.ImageURL = url

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if delErr := s.blobs.Delete(ctx, ProductImagesContainer, blobName); delErr != nil {
			zap.S().Warnw("orphaned product image", "blob", blobName, "error", delErr)
		}
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Product uploaded: %s", product.ProductName))
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, rowKey string, req models.ProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, rowKey)
	if err != nil {
		return nil, err
	}

	if err := applyProductRequest(product, req); err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, models.ErrConflict) {
			zap.S().Warnw("concurrent product update rejected", "product", rowKey)
		}
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Product updated: %s", product.ProductName))
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, rowKey string) error {
	if err := s.productRepo.DeleteProduct(ctx, rowKey); err != nil {
		return err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Product deleted: %s", rowKey))
	return nil
}
