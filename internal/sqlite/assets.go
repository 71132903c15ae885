package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

// assetColumns is the column list shared by every asset SELECT, in
// scanAsset order.
var assetColumns = []string{
	"id", "name", "asset_tag", "category", "location", "serial_number",
	"purchase_date", "cost", "status", "image_url", "last_validated",
}

// CreateAsset inserts a new asset. The store assigns the ID and stamps
// purchase_date with the current time; both are immutable afterwards.
// A duplicate asset_tag returns ErrDuplicateTag and leaves the existing
// row untouched.
func (s *Store) CreateAsset(a *types.Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.ApplyDefaults()
	a.PurchaseDate = time.Now().UTC()

	res, err := s.db.Exec(
		`INSERT INTO assets (name, asset_tag, category, location, serial_number, purchase_date, cost, status, image_url)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.AssetTag, a.Category, a.Location, a.SerialNumber,
		a.PurchaseDate.Format(time.RFC3339), a.Cost, a.Status, a.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err, "assets.asset_tag") {
			return fmt.Errorf("asset tag %q: %w", a.AssetTag, types.ErrDuplicateTag)
		}
		return fmt.Errorf("inserting asset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading asset id: %w", err)
	}
	a.ID = id

	s.invalidateSummary()
	s.log.Debug().Int64("id", id).Str("tag", a.AssetTag).Msg("asset created")
	return nil
}

// GetAsset retrieves an asset by ID. A missing row is ErrNotFound, not
// a failure.
func (s *Store) GetAsset(id int64) (*types.Asset, error) {
	row := s.db.QueryRow(
		"SELECT "+strings.Join(assetColumns, ", ")+" FROM assets WHERE id = ?", id,
	)
	a, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting asset %d: %w", id, err)
	}
	return a, nil
}

// ListAssets returns assets matching the filter, ordered by ID. Search
// is a case-insensitive substring match over name, tag, and serial.
func (s *Store) ListAssets(filter types.AssetFilter) ([]types.Asset, error) {
	q := s.builder.
		Select(assetColumns...).
		From("assets").
		OrderBy("id ASC")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.Like{"name": like},
			sq.Like{"asset_tag": like},
			sq.Like{"serial_number": like},
		})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building asset query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	assets := make([]types.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// UpdateAsset rewrites every mutable field of an asset. ID and
// purchase_date are never touched.
func (s *Store) UpdateAsset(a *types.Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.ApplyDefaults()

	res, err := s.db.Exec(
		`UPDATE assets SET name = ?, asset_tag = ?, category = ?, location = ?,
         serial_number = ?, cost = ?, status = ?, image_url = ? WHERE id = ?`,
		a.Name, a.AssetTag, a.Category, a.Location, a.SerialNumber,
		a.Cost, a.Status, a.ImageURL, a.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "assets.asset_tag") {
			return fmt.Errorf("asset tag %q: %w", a.AssetTag, types.ErrDuplicateTag)
		}
		return fmt.Errorf("updating asset %d: %w", a.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.invalidateSummary()
	return nil
}

// DeleteAsset hard-deletes an asset. There is no tombstone; "Disposed"
// is a status, not a deletion.
func (s *Store) DeleteAsset(id int64) error {
	res, err := s.db.Exec("DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting asset %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.invalidateSummary()
	s.log.Debug().Int64("id", id).Msg("asset deleted")
	return nil
}

// MarkValidated stamps last_validated with the current time.
func (s *Store) MarkValidated(id int64) error {
	res, err := s.db.Exec(
		"UPDATE assets SET last_validated = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("marking asset %d validated: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// FleetValue sums the cost of all assets except disposed ones.
func (s *Store) FleetValue() (float64, error) {
	var total float64
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(cost), 0) FROM assets WHERE status != ?",
		types.StatusDisposed,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing fleet value: %w", err)
	}
	return total, nil
}

// ExportAssets serializes every asset row as a JSON array, the ad-hoc
// format consumed by the share action. No schema guarantee beyond
// "array of asset records as stored".
func (s *Store) ExportAssets() ([]byte, error) {
	assets, err := s.ListAssets(types.AssetFilter{})
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding assets: %w", err)
	}
	return data, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAsset hydrates one asset row in assetColumns order.
func scanAsset(row rowScanner) (*types.Asset, error) {
	var a types.Asset
	var purchased string
	var validated sql.NullString

	err := row.Scan(
		&a.ID, &a.Name, &a.AssetTag, &a.Category, &a.Location, &a.SerialNumber,
		&purchased, &a.Cost, &a.Status, &a.ImageURL, &validated,
	)
	if err != nil {
		return nil, err
	}

	a.PurchaseDate, err = parseTime(purchased)
	if err != nil {
		return nil, fmt.Errorf("parsing purchase_date %q: %w", purchased, err)
	}
	if validated.Valid {
		ts, err := parseTime(validated.String)
		if err != nil {
			return nil, fmt.Errorf("parsing last_validated %q: %w", validated.String, err)
		}
		a.LastValidated = &ts
	}
	return &a, nil
}

// parseTime accepts both RFC3339 (written by this code) and SQLite's
// datetime() format (written by the seed step).
func parseTime(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure on the given qualified column.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
