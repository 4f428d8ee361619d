package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"abc-retail/libs"
	"abc-retail/middleware"
	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	checkoutService   *services.CheckoutService
	orderAdminService *services.OrderAdminService
	sessions          libs.SessionStore
}

func NewOrderController(checkoutService *services.CheckoutService, orderAdminService *services.OrderAdminService, sessions libs.SessionStore) *OrderController {
	return &OrderController{
		checkoutService:   checkoutService,
		orderAdminService: orderAdminService,
		sessions:          sessions,
	}
}

// Checkout godoc
// @Summary Place order
// @Description Turns the session cart into an order; an empty cart redirects back to the cart
// @Tags Orders
// @Success 303 "Redirect to /orders/success?order_id=..."
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	email := sessionValue(ctx, c, ctrl.sessions, models.SessionCustomerEmail)

	orderID, err := ctrl.checkoutService.Checkout(ctx, middleware.SessionID(c), email)
	if errors.Is(err, models.ErrEmptyCart) {
		redirect(c, "/cart")
		return
	}
	if errors.Is(err, services.ErrCartNotCleared) {
		zap.S().Errorw("checkout left the cart in place", "order", orderID, "error", err)
	} else if err != nil {
		respondError(c, err, "Failed to place order")
		return
	}

	redirect(c, "/orders/success?order_id="+url.QueryEscape(orderID))
}

// OrderSuccess godoc
// @Summary Order confirmation
// @Tags Orders
// @Produce json
// @Param order_id query string true "Order id"
// @Success 200 {object} models.Response{data=models.OrderDetails}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/success [get]
func (ctrl *OrderController) OrderSuccess(c *gin.Context) {
	details, err := ctrl.checkoutService.GetOrder(c.Request.Context(), c.Query("order_id"))
	if err != nil {
		respondError(c, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order placed successfully", Data: details})
}

// ManageOrders godoc
// @Summary Pending orders
// @Description Reads up to max pending orders from the order queue without removing them
// @Tags Admin Orders
// @Security BearerAuth
// @Produce json
// @Param max query int false "Maximum messages" default(32)
// @Success 200 {object} models.Response{data=models.ManageOrdersView}
// @Router /admin/orders [get]
func (ctrl *OrderController) ManageOrders(c *gin.Context) {
	maxCount, err := strconv.Atoi(c.DefaultQuery("max", strconv.Itoa(services.DefaultDrainCount)))
	if err != nil {
		maxCount = services.DefaultDrainCount
	}

	view, err := ctrl.orderAdminService.ManageOrders(c.Request.Context(), maxCount)
	if err != nil {
		respondError(c, err, "Failed to read pending orders")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Pending orders retrieved", Data: view})
}
