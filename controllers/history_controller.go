package controllers

import (
	"net/http"

	"abc-retail/models"

	"github.com/gin-gonic/gin"
)

// GetHistory godoc
// @Summary My orders
// @Description Orders of the signed-in customer, newest first
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Order}
// @Success 303 "Redirect to /customer/login when signed out"
// @Router /orders [get]
func (ctrl *OrderController) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	email := sessionValue(ctx, c, ctrl.sessions, models.SessionCustomerEmail)
	if email == "" {
		redirect(c, "/customer/login")
		return
	}

	orders, err := ctrl.checkoutService.ListOrdersForCustomer(ctx, email)
	if err != nil {
		respondError(c, err, "Failed to get order history")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order history retrieved", Data: orders})
}
