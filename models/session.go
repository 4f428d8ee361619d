package models

const (
	SessionCustomerID    = "CustomerID"
	SessionCustomerEmail = "CustomerEmail"
	SessionCustomerName  = "CustomerName"
)
