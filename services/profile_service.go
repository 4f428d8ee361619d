package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/utils"
)

const (
	ProfileShare     = "profileshare"
	ProfileDirectory = "profiles"
)

// ProfileService manages employee and customer accounts and the documents
// attached to them on the profile share.
type ProfileService struct {
	employeeRepo *repositories.EmployeeRepository
	customerRepo *repositories.CustomerRepository
	share        libs.FileShare
	audit        *AuditService
}

func NewProfileService(employeeRepo *repositories.EmployeeRepository, customerRepo *repositories.CustomerRepository, share libs.FileShare, audit *AuditService) *ProfileService {
	return &ProfileService{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		share:        share,
		audit:        audit,
	}
}

func (s *ProfileService) ListProfiles(ctx context.Context) (*models.ManageProfilesView, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	view := &models.ManageProfilesView{
		Employees: make([]models.Profile, 0, len(employees)),
		Customers: make([]models.Profile, 0, len(customers)),
	}
	for _, e := range employees {
		view.Employees = append(view.Employees, e.Profile())
	}
	for _, c := range customers {
		view.Customers = append(view.Customers, c.Profile())
	}
	return view, nil
}

func (s *ProfileService) employeeEmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	existing, err := s.employeeRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.RowKey != exceptID, nil
}

func (s *ProfileService) customerEmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.RowKey != exceptID, nil
}

func (s *ProfileService) AddEmployee(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	taken, err := s.employeeEmailTaken(ctx, strings.TrimSpace(req.Email), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationError("Employee already exists.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, validationError("password is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	employee := &models.Employee{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Employee added: %s (%s)", employee.FullName, employee.Email))
	return employee, nil
}

func (s *ProfileService) UpdateEmployee(ctx context.Context, rowKey string, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, rowKey)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		employee.FullName = name
	}
	if email := strings.TrimSpace(req.Email); email != "" && email != employee.Email {
		taken, err := s.employeeEmailTaken(ctx, email, rowKey)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validationError("Employee already exists.")
		}
		employee.Email = email
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if req.Password != "" {
		if employee.PasswordHash, err = utils.HashPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Employee updated: %s (%s)", employee.FullName, employee.Email))
	return employee, nil
}

func (s *ProfileService) DeleteEmployee(ctx context.Context, rowKey string) error {
	if err := s.employeeRepo.Delete(ctx, rowKey); err != nil {
		return err
	}
	s.audit.LogEvent(ctx, fmt.Sprintf("Employee deleted: %s", rowKey))
	return nil
}

func (s *ProfileService) AddCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	taken, err := s.customerEmailTaken(ctx, strings.TrimSpace(req.Email), "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationError("Customer already exists.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, validationError("password is required")
	}

	customer := &models.Customer{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Customer added: %s (%s)", customer.FullName, customer.Email))
	return customer, nil
}

func (s *ProfileService) UpdateCustomer(ctx context.Context, rowKey string, req models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, rowKey)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		customer.FullName = name
	}
	if email := strings.TrimSpace(req.Email); email != "" && email != customer.Email {
		taken, err := s.customerEmailTaken(ctx, email, rowKey)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validationError("Customer already exists.")
		}
		customer.Email = email
	}
	if req.Password != "" {
		if customer.PasswordHash, err = utils.HashPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Customer updated: %s (%s)", customer.FullName, customer.Email))
	return customer, nil
}

func (s *ProfileService) DeleteCustomer(ctx context.Context, rowKey string) error {
	if err := s.customerRepo.Delete(ctx, rowKey); err != nil {
		return err
	}
	s.audit.LogEvent(ctx, fmt.Sprintf("Customer deleted: %s", rowKey))
	return nil
}

// ProfileFileName is the share name of a document uploaded for profileID.
func ProfileFileName(profileID, originalName string) (string, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return "", validationError("profile id is required")
	}
	name, err := libs.CleanFileName(profileID + "_" + originalName)
	if err != nil {
		return "", translateFileError(err)
	}
	return name, nil
}

func (s *ProfileService) UploadProfileFile(ctx context.Context, profileID, originalName string, content io.Reader) (string, error) {
	name, err := ProfileFileName(profileID, originalName)
	if err != nil {
		return "", err
	}

	if err := s.share.Write(ctx, ProfileShare, ProfileDirectory, name, content); err != nil {
		return "", translateFileError(err)
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Profile file uploaded: %s", profileID))
	return name, nil
}

// ListProfileFiles lists the documents on the share; a non-empty profileID keeps only that profile's files.
func (s *ProfileService) ListProfileFiles(ctx context.Context, profileID string) ([]models.StoredFile, error) {
	files, err := s.share.List(ctx, ProfileShare, ProfileDirectory)
	if err != nil {
		return nil, translateFileError(err)
	}

	stored := toStoredFiles(files)
	if profileID == "" {
		return stored, nil
	}

	filtered := make([]models.StoredFile, 0, len(stored))
	for _, f := range stored {
		if strings.HasPrefix(f.Name, profileID+"_") {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

func (s *ProfileService) DownloadProfileFile(ctx context.Context, name string) ([]byte, error) {
	data, err := s.share.Read(ctx, ProfileShare, ProfileDirectory, name)
	return data, translateFileError(err)
}

func (s *ProfileService) DeleteProfileFile(ctx context.Context, name string) error {
	if err := s.share.Delete(ctx, ProfileShare, ProfileDirectory, name); err != nil {
		return translateFileError(err)
	}

	s.audit.LogEvent(ctx, fmt.Sprintf("Profile file deleted: %s", name))
	return nil
}
