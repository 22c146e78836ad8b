package master

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository reads the routing reference tables. All queries are
// read-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an open database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns the full routing table in stable order, unfiltered.
// Per-vendor filtering happens at the caller so the cache can hold one
// shared copy for every vendor.
func (r *Repository) ListAll(ctx context.Context) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).Order("Vendor, OriginCode, DestinyCode").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load master data: %w", err)
	}
	return rows, nil
}

// MaxRows returns the sheet line limit configured for a vendor, matched
// case-insensitively. 0 means no limit is configured.
func (r *Repository) MaxRows(ctx context.Context, vendor string) (int, error) {
	var limit SheetLimit
	err := r.db.WithContext(ctx).Where("LOWER(VendorName) = LOWER(?)", vendor).Take(&limit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load sheet limit for %s: %w", vendor, err)
	}
	return limit.MaxLine, nil
}
