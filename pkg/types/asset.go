package types

import "time"

// Asset statuses. "Disposed" is a status value, not a deletion: disposed
// assets stay in the table but are excluded from fleet value totals.
const (
	StatusActive   = "Active"
	StatusInRepair = "In Repair"
	StatusDisposed = "Disposed"
)

// validAssetStatuses is the set of recognized asset status values.
var validAssetStatuses = map[string]bool{
	StatusActive:   true,
	StatusInRepair: true,
	StatusDisposed: true,
}

// ValidStatus reports whether s is a recognized asset status.
func ValidStatus(s string) bool {
	return validAssetStatuses[s]
}

// Defaults applied to descriptive fields left empty on creation.
const (
	DefaultCategory = "General"
	DefaultLocation = "Unassigned"
)

// Asset represents a tracked capital item.
//
// ID and PurchaseDate are set by the store on insert and are immutable
// afterwards. AssetTag is the external business key and must be unique
// across all assets.
type Asset struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	AssetTag      string     `json:"asset_tag"`
	Category      string     `json:"category"`
	Location      string     `json:"location"`
	SerialNumber  string     `json:"serial_number,omitempty"`
	Cost          float64    `json:"cost"`
	Status        string     `json:"status"`
	PurchaseDate  time.Time  `json:"purchase_date"`
	LastValidated *time.Time `json:"last_validated,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
}

// Validate checks the caller-supplied fields of an asset. It does not
// check tag uniqueness; that is enforced by the store's UNIQUE constraint.
func (a *Asset) Validate() error {
	if a.Name == "" {
		return ErrInvalidName
	}
	if a.AssetTag == "" {
		return ErrInvalidName
	}
	if a.Cost < 0 {
		return ErrNegativeCost
	}
	if a.Status != "" && !validAssetStatuses[a.Status] {
		return ErrInvalidStatus
	}
	return nil
}

// ApplyDefaults fills empty descriptive fields with their filler values
// and defaults the status to Active.
func (a *Asset) ApplyDefaults() {
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.Location == "" {
		a.Location = DefaultLocation
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
}

// AssetFilter narrows ListAssets results. Zero-value fields are ignored.
// Search matches a substring of the name, tag, or serial number.
type AssetFilter struct {
	Status   string
	Category string
	Search   string
}
