package controllers

import (
	"net/http"

	"abc-retail/libs"
	"abc-retail/middleware"
	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	authService *services.AuthService
	sessions    libs.SessionStore
}

func NewAuthController(authService *services.AuthService, sessions libs.SessionStore) *AuthController {
	return &AuthController{authService: authService, sessions: sessions}
}

func (ctrl *AuthController) signIn(c *gin.Context, customer *models.Customer) error {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)
	for key, value := range map[string]string{
		models.SessionCustomerID:    customer.RowKey,
		models.SessionCustomerEmail: customer.Email,
		models.SessionCustomerName:  customer.FullName,
	} {
		if err := ctrl.sessions.Set(ctx, sid, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Register godoc
// @Summary Register customer
// @Description Create a customer account and sign it in
// @Tags Customer
// @Accept x-www-form-urlencoded
// @Produce json
// @Param full_name formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /customer/dashboard"
// @Failure 400 {object} models.ErrorResponse
// @Router /customer/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	customer, err := ctrl.authService.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}

	if err := ctrl.signIn(c, customer); err != nil {
		respondError(c, err, "Registration failed")
		return
	}
	redirect(c, "/customer/dashboard")
}

// Login godoc
// @Summary Customer login
// @Tags Customer
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /customer/dashboard"
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /customer/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	customer, err := ctrl.authService.LoginCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	if err := ctrl.signIn(c, customer); err != nil {
		respondError(c, err, "Login failed")
		return
	}
	redirect(c, "/customer/dashboard")
}

// Logout godoc
// @Summary Customer logout
// @Tags Customer
// @Success 303 "Redirect to /customer/login"
// @Router /customer/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.sessions.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		zap.S().Warnw("failed to clear session", "error", err)
	}
	redirect(c, "/customer/login")
}

// Dashboard godoc
// @Summary Customer dashboard
// @Tags Customer
// @Produce json
// @Success 200 {object} models.Response{data=models.DashboardView}
// @Success 303 "Redirect to /customer/login when signed out"
// @Router /customer/dashboard [get]
func (ctrl *AuthController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	email := sessionValue(ctx, c, ctrl.sessions, models.SessionCustomerEmail)
	if email == "" {
		redirect(c, "/customer/login")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Welcome back",
		Data: models.DashboardView{
			Name:  sessionValue(ctx, c, ctrl.sessions, models.SessionCustomerName),
			Email: email,
			Role:  models.RoleCustomer,
		},
	})
}

// UpdateProfile godoc
// @Summary Update own customer profile
// @Tags Customer
// @Accept x-www-form-urlencoded
// @Param full_name formData string false "Full name"
// @Param email formData string false "Email"
// @Success 303 "Redirect to /customer/dashboard"
// @Failure 400 {object} models.ErrorResponse
// @Router /customer/profile [post]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	customerID := sessionValue(ctx, c, ctrl.sessions, models.SessionCustomerID)
	if customerID == "" {
		redirect(c, "/customer/login")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	customer, err := ctrl.authService.UpdateCustomerSelf(ctx, customerID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	if err := ctrl.signIn(c, customer); err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	redirect(c, "/customer/dashboard")
}

// EmployeeLogin godoc
// @Summary Employee login
// @Description Exchange employee credentials for a bearer token
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /employee/login [post]
func (ctrl *AuthController) EmployeeLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	resp, err := ctrl.authService.LoginEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Login successful", Data: resp})
}

// EmployeeDashboard godoc
// @Summary Employee dashboard
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.DashboardView}
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/dashboard [get]
func (ctrl *AuthController) EmployeeDashboard(c *gin.Context) {
	employee, err := ctrl.authService.GetEmployee(c.Request.Context(), c.GetString(middleware.ContextEmployeeID))
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard retrieved successfully",
		Data:    models.DashboardView{Name: employee.FullName, Email: employee.Email, Role: employee.Role},
	})
}
