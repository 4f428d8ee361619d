package models

import "time"

const (
	CustomersPartition = "Customers"
	EmployeesPartition = "Employees"

	RoleEmployee = "Employee"
	RoleCustomer = "Customer"
)

type Customer struct {
	PartitionKey string    `json:"partition_key"`
	RowKey       string    `json:"row_key"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ETag         string    `json:"-"`
	Timestamp    time.Time `json:"timestamp"`
}

type Employee struct {
	PartitionKey string    `json:"partition_key"`
	RowKey       string    `json:"row_key"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ETag         string    `json:"-"`
	Timestamp    time.Time `json:"timestamp"`
}

// Profile is the public view of a customer or employee; it never carries the digest.
type Profile struct {
	RowKey   string `json:"row_key"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (c Customer) Profile() Profile {
	return Profile{RowKey: c.RowKey, FullName: c.FullName, Email: c.Email, Role: RoleCustomer}
}

func (e Employee) Profile() Profile {
	return Profile{RowKey: e.RowKey, FullName: e.FullName, Email: e.Email, Role: e.Role}
}

type ManageProfilesView struct {
	Employees []Profile `json:"employees"`
	Customers []Profile `json:"customers"`
}
