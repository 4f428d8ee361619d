package models

import "github.com/shopspring/decimal"

const CartSessionKey = "Cart"

type CartLineItem struct {
	RowKey      string          `json:"row_key"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered list of line items held in one browser session.
type Cart []CartLineItem

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) IndexOf(rowKey string) int {
	for i, item := range c {
		if item.RowKey == rowKey {
			return i
		}
	}
	return -1
}

type CartView struct {
	Items []CartLineItem  `json:"items"`
	Total decimal.Decimal `json:"total"`
}
