package controllers

import (
	"net/http"

	"abc-retail/models"

	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product row key"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved successfully", Data: product})
}
