package controllers

import (
	"net/http"

	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	profileService *services.ProfileService
}

func NewUserController(profileService *services.ProfileService) *UserController {
	return &UserController{profileService: profileService}
}

// GetProfiles godoc
// @Summary List profiles
// @Description Every employee and customer account
// @Tags Admin Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.ManageProfilesView}
// @Router /admin/profiles [get]
func (ctrl *UserController) GetProfiles(c *gin.Context) {
	view, err := ctrl.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get profiles")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profiles retrieved successfully", Data: view})
}

// CreateEmployee godoc
// @Summary Add employee
// @Tags Admin Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateEmployeeRequest true "Employee"
// @Success 201 {object} models.Response{data=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/profiles/employees [post]
func (ctrl *UserController) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Full name, valid email and password are required"})
		return
	}

	employee, err := ctrl.profileService.AddEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Employee created successfully", Data: employee.Profile()})
}

// UpdateEmployee godoc
// @Summary Update employee
// @Tags Admin Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee row key"
// @Param request body models.UpdateEmployeeRequest true "Employee fields"
// @Success 200 {object} models.Response{data=models.Profile}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/profiles/employees/{id} [put]
func (ctrl *UserController) UpdateEmployee(c *gin.Context) {
	var req models.UpdateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	employee, err := ctrl.profileService.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Employee updated successfully", Data: employee.Profile()})
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Tags Admin Profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee row key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/profiles/employees/{id} [delete]
func (ctrl *UserController) DeleteEmployee(c *gin.Context) {
	if err := ctrl.profileService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Employee deleted successfully"})
}

// CreateCustomer godoc
// @Summary Add customer
// @Tags Admin Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.Response{data=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/profiles/customers [post]
func (ctrl *UserController) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Full name, valid email and password are required"})
		return
	}

	customer, err := ctrl.profileService.AddCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Customer created successfully", Data: customer.Profile()})
}

// UpdateCustomer godoc
// @Summary Update customer
// @Tags Admin Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Customer row key"
// @Param request body models.UpdateCustomerRequest true "Customer fields"
// @Success 200 {object} models.Response{data=models.Profile}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/profiles/customers/{id} [put]
func (ctrl *UserController) UpdateCustomer(c *gin.Context) {
	var req models.UpdateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	customer, err := ctrl.profileService.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Customer updated successfully", Data: customer.Profile()})
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Tags Admin Profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer row key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/profiles/customers/{id} [delete]
func (ctrl *UserController) DeleteCustomer(c *gin.Context) {
	if err := ctrl.profileService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Customer deleted successfully"})
}
