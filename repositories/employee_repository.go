package repositories

import (
	"context"

	"abc-retail/libs"
	"abc-retail/models"

	"github.com/google/uuid"
)

type EmployeeRepository struct {
	store libs.TableStore
}

func NewEmployeeRepository(store libs.TableStore) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func toEmployee(entity libs.Entity, record userRecord) models.Employee {
	return models.Employee{
		PartitionKey: entity.PartitionKey,
		RowKey:       entity.RowKey,
		FullName:     record.FullName,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Role:         record.Role,
		ETag:         entity.ETag,
		Timestamp:    entity.Timestamp,
	}
}

func employeeRecord(e *models.Employee) userRecord {
	role := e.Role
	if role == "" {
		role = models.RoleEmployee
	}
	return userRecord{FullName: e.FullName, Email: e.Email, PasswordHash: e.PasswordHash, Role: role}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.PartitionKey == "" {
		employee.PartitionKey = models.EmployeesPartition
	}
	if employee.RowKey == "" {
		employee.RowKey = uuid.NewString()
	}

	record := employeeRecord(employee)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(employee.PartitionKey, employee.RowKey, "", record)
	if err != nil {
		return err
	}
	stored, err := r.store.AddEntity(ctx, TableEmployees, entity)
	if err != nil {
		return translateError(err)
	}

	employee.Role = record.Role
	employee.ETag = stored.ETag
	employee.Timestamp = stored.Timestamp
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	entity, record, err := getRecord[userRecord](ctx, r.store, TableEmployees, models.EmployeesPartition, id)
	if err != nil {
		return nil, err
	}
	employee := toEmployee(entity, record)
	return &employee, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	employees, err := queryRecords(ctx, r.store, TableEmployees, libs.Filter{
		PartitionKey: models.EmployeesPartition,
		Property:     "email",
		Value:        email,
	}, toEmployee)
	if err != nil {
		return nil, err
	}
	return first(employees)
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	return queryRecords(ctx, r.store, TableEmployees, libs.Filter{PartitionKey: models.EmployeesPartition}, toEmployee)
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	record := employeeRecord(employee)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(models.EmployeesPartition, employee.RowKey, employee.ETag, record)
	if err != nil {
		return err
	}
	stored, err := r.store.UpdateEntity(ctx, TableEmployees, entity, employee.ETag)
	if err != nil {
		return translateError(err)
	}

	employee.ETag = stored.ETag
	employee.Timestamp = stored.Timestamp
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return translateError(r.store.DeleteEntity(ctx, TableEmployees, models.EmployeesPartition, id))
}
