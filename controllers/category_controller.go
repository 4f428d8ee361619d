package controllers

import (
	"net/http"

	"abc-retail/models"

	"github.com/gin-gonic/gin"
)

// GetAllCategories godoc
// @Summary Get all categories
// @Description Categories derived from the catalog with their product counts
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Category}
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get categories")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}
