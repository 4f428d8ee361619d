package models

type Category struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}
