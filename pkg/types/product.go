package types

import "time"

// Product represents a stocked sellable item.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// Validate checks the caller-supplied fields of a product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// Transaction types recorded in the ledger.
const (
	TxTypeSale = "SALE"
)

// Sale is one row of the transactions ledger. A sale is only ever written
// together with the matching stock decrement; the two commit or roll back
// as a unit.
type Sale struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
