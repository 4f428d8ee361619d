package controllers

import (
	"net/http"

	"abc-retail/middleware"
	"abc-retail/models"
	"abc-retail/services"
	"abc-retail/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
	cartService    *services.CartService
	maxUploadSize  int64
}

func NewProductController(productService *services.ProductService, cartService *services.CartService, maxUploadSize int64) *ProductController {
	return &ProductController{
		productService: productService,
		cartService:    cartService,
		maxUploadSize:  maxUploadSize,
	}
}

// GetCatalog godoc
// @Summary Product catalog
// @Description Products filtered by category, the category list and the visitor's cart
// @Tags Products
// @Produce json
// @Param category query string false "Category name or All"
// @Success 200 {object} models.Response{data=models.CatalogView}
// @Router /products [get]
func (ctrl *ProductController) GetCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.DefaultQuery("category", models.AllCategories)

	products, err := ctrl.productService.ListProducts(ctx, category)
	if err != nil {
		respondError(c, err, "Failed to get products")
		return
	}

	categories, err := ctrl.productService.Categories(ctx)
	if err != nil {
		respondError(c, err, "Failed to get categories")
		return
	}

	cart, err := ctrl.cartService.View(ctx, middleware.SessionID(c))
	if err != nil {
		respondError(c, err, "Failed to load cart")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data: models.CatalogView{
			Products:         products,
			Categories:       categories,
			SelectedCategory: category,
			Cart:             cart,
		},
	})
}

// CreateProduct godoc
// @Summary Create product
// @Description Upload the product image and store the product
// @Tags Admin Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param product_name formData string true "Product name"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Param price formData string true "Price"
// @Param quantity formData int false "Quantity"
// @Param out_of_stock formData bool false "Out of stock"
// @Param image formData file true "Product image"
// @Success 201 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Product name and price are required"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Please select an image file."})
		return
	}
	if err := utils.ValidateImageFile(header, ctrl.maxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read image")
		return
	}
	defer file.Close()

	product, err := ctrl.productService.CreateProduct(
		c.Request.Context(),
		req,
		&services.ProductImage{Filename: header.Filename, Content: file},
		c.GetString(middleware.ContextEmployeeEmail),
	)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created successfully", Data: product})
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Admin Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product row key"
// @Param request body models.ProductRequest true "Product fields"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Product name and price are required"})
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated successfully", Data: product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Admin Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product row key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted successfully"})
}
