package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/utils"

	"go.uber.org/zap"
)

type seedEmployee struct {
	RowKey   string
	FullName string
	Email    string
	Password string
}

var defaultEmployees = []seedEmployee{
	{RowKey: "emp001", FullName: "John Smith", Email: "john@abc.com", Password: "Easy@123"},
	{RowKey: "emp002", FullName: "Jane Doe", Email: "jane@abc.com", Password: "Pass@456"},
	{RowKey: "emp003", FullName: "Michael Brown", Email: "michael@abc.com", Password: "Admin@789"},
}

type AuthService struct {
	customerRepo *repositories.CustomerRepository
	employeeRepo *repositories.EmployeeRepository
	tokens       *utils.TokenIssuer
	audit        *AuditService
}

func NewAuthService(customerRepo *repositories.CustomerRepository, employeeRepo *repositories.EmployeeRepository, tokens *utils.TokenIssuer, audit *AuditService) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		tokens:       tokens,
		audit:        audit,
	}
}

func (s *AuthService) customerEmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.RowKey != exceptID, nil
}

func (s *AuthService) RegisterCustomer(ctx context.Context, req models.RegisterRequest) (*models.Customer, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" || email == "" || req.Password == "" {
		return nil, validationError("All fields are required.")
	}

	taken, err := s.customerEmailTaken(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationError("Email already registered.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{FullName: fullName, Email: email, PasswordHash: hash}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	zap.S().Infow("customer registered", "customer", customer.RowKey)
	return customer, nil
}

// LoginCustomer never tells an unknown email apart from a wrong password.
func (s *AuthService) LoginCustomer(ctx context.Context, req models.LoginRequest) (*models.Customer, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, validationError("Email and password are required.")
	}

	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPassword(customer.PasswordHash, req.Password) {
		return nil, models.ErrInvalidCredentials
	}
	return customer, nil
}

func (s *AuthService) LoginEmployee(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, validationError("Email and password are required.")
	}

	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPassword(employee.PasswordHash, req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(employee.RowKey, employee.Email, employee.Role)
	if err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Employee logged in: %s", employee.Email))
	return &models.LoginResponse{Token: token, Employee: employee.Profile()}, nil
}

func (s *AuthService) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	return s.customerRepo.FindByID(ctx, customerID)
}

func (s *AuthService) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.employeeRepo.FindByID(ctx, employeeID)
}

// UpdateCustomerSelf lets a signed-in customer change their own name and email.
func (s *AuthService) UpdateCustomerSelf(ctx context.Context, customerID string, req models.UpdateProfileRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		customer.FullName = name
	}
	if email := strings.TrimSpace(req.Email); email != "" && email != customer.Email {
		taken, err := s.customerEmailTaken(ctx, email, customer.RowKey)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validationError("Email already registered.")
		}
		customer.Email = email
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SeedEmployees creates the default back office accounts that are missing.
func (s *AuthService) SeedEmployees(ctx context.Context) error {
	for _, seed := range defaultEmployees {
		_, err := s.employeeRepo.FindByID(ctx, seed.RowKey)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}

		hash, err := utils.HashPassword(seed.Password)
		if err != nil {
			return err
		}

		employee := &models.Employee{
			PartitionKey: models.EmployeesPartition,
			RowKey:       seed.RowKey,
			FullName:     seed.FullName,
			Email:        seed.Email,
			PasswordHash: hash,
			Role:         models.RoleEmployee,
		}
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return err
		}
		zap.S().Infof("Create default employee %s (%s)", seed.RowKey, seed.Email)
	}
	return nil
}
