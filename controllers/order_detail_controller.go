package controllers

import (
	"net/http"

	"abc-retail/models"

	"github.com/gin-gonic/gin"
)

// GetOrderDetail godoc
// @Summary Order details
// @Tags Orders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} models.Response{data=models.OrderDetails}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderDetail(c *gin.Context) {
	details, err := ctrl.checkoutService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved successfully", Data: details})
}
