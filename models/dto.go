package models

type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
}

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Role     string `json:"role" form:"role"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type CreateCustomerRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateCustomerRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type CartItemRequest struct {
	RowKey string `json:"row_key" form:"row_key" binding:"required"`
}

// ProductRequest carries the editable product fields; Price is parsed as a decimal string.
type ProductRequest struct {
	ProductName string `json:"product_name" form:"product_name" binding:"required"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" binding:"required"`
	Quantity    int    `json:"quantity" form:"quantity"`
	OutOfStock  bool   `json:"out_of_stock" form:"out_of_stock"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
