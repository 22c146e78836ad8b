// Package master loads and caches the shared routing reference data the
// reconciliation runs against. The tables are owned by the billing
// backend; this package only reads them.
package master

// Record is one routing rule from the OBRVendor reference table.
type Record struct {
	Vendor      string `gorm:"column:Vendor"`
	OriginCode  string `gorm:"column:OriginCode"`
	DestinyCode string `gorm:"column:DestinyCode"`
	Destiny     string `gorm:"column:Destiny"`
	Routing     string `gorm:"column:Routing"`
	Origin      string `gorm:"column:Origin"`
}

// TableName maps the model onto the backend-owned table.
func (Record) TableName() string {
	return "OBRVendor"
}

// SheetLimit caps how many spreadsheet lines are read for a vendor. A
// vendor without a row is read unlimited.
type SheetLimit struct {
	VendorName string `gorm:"column:VendorName"`
	MaxLine    int    `gorm:"column:MaxLine"`
}

// TableName maps the model onto the backend-owned table.
func (SheetLimit) TableName() string {
	return "RatesFormatter"
}
