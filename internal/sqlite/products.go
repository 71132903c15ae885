package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

// CreateProduct inserts a new stocked product and assigns its ID.
func (s *Store) CreateProduct(p *types.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Category == "" {
		p.Category = types.DefaultCategory
	}

	res, err := s.db.Exec(
		"INSERT INTO products (name, price, stock, category) VALUES (?, ?, ?, ?)",
		p.Name, p.Price, p.Stock, p.Category,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading product id: %w", err)
	}
	p.ID = id

	s.invalidateSummary()
	return nil
}

// GetProduct retrieves a product by ID.
func (s *Store) GetProduct(id int64) (*types.Product, error) {
	var p types.Product
	err := s.db.QueryRow(
		"SELECT id, name, price, stock, category FROM products WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	return &p, nil
}

// ListProducts returns all products ordered by ID.
func (s *Store) ListProducts() ([]types.Product, error) {
	rows, err := s.db.Query("SELECT id, name, price, stock, category FROM products ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := make([]types.Product, 0)
	for rows.Next() {
		var p types.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateProduct rewrites every mutable field of a product.
func (s *Store) UpdateProduct(p *types.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE products SET name = ?, price = ?, stock = ?, category = ? WHERE id = ?",
		p.Name, p.Price, p.Stock, p.Category, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product %d: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.invalidateSummary()
	return nil
}

// Sell decrements stock and records the sale in the transactions ledger
// as one all-or-nothing unit: either both rows change or neither does,
// so stock can never drift without a matching ledger entry.
func (s *Store) Sell(productID int64, quantity int) (*types.Sale, error) {
	if quantity <= 0 {
		return nil, types.ErrInvalidQuantity
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning sale: %w", err)
	}
	defer tx.Rollback()

	var price float64
	var stock int
	err = tx.QueryRow("SELECT price, stock FROM products WHERE id = ?", productID).Scan(&price, &stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("reading product %d: %w", productID, err)
	}
	if stock < quantity {
		return nil, fmt.Errorf("product %d has %d in stock, want %d: %w",
			productID, stock, quantity, types.ErrInsufficientStock)
	}

	if _, err := tx.Exec(
		"UPDATE products SET stock = stock - ? WHERE id = ?", quantity, productID,
	); err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}

	sale := &types.Sale{
		Reference: saleReference(),
		ProductID: productID,
		Quantity:  quantity,
		Type:      types.TxTypeSale,
		Amount:    price * float64(quantity),
		CreatedAt: time.Now().UTC(),
	}
	res, err := tx.Exec(
		"INSERT INTO transactions (reference, product_id, quantity, type, amount, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		sale.Reference, sale.ProductID, sale.Quantity, sale.Type, sale.Amount,
		sale.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("recording sale: %w", err)
	}
	if sale.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("reading sale id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	s.invalidateSummary()
	s.log.Info().Int64("product", productID).Int("qty", quantity).
		Float64("amount", sale.Amount).Msg("sale recorded")
	return sale, nil
}

// ListSales returns ledger entries newest first.
func (s *Store) ListSales() ([]types.Sale, error) {
	rows, err := s.db.Query(
		"SELECT id, reference, product_id, quantity, type, amount, created_at FROM transactions ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	sales := make([]types.Sale, 0)
	for rows.Next() {
		var sale types.Sale
		var created string
		if err := rows.Scan(&sale.ID, &sale.Reference, &sale.ProductID, &sale.Quantity,
			&sale.Type, &sale.Amount, &created); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		if sale.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("parsing sale timestamp %q: %w", created, err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// saleReference generates a UUID v7 ledger reference, falling back to v4
// if v7 generation fails.
func saleReference() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
