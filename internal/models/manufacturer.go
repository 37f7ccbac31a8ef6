package models

// Manufacturer is a row of the manufacturers table. The two previous-name
// columns form a fixed-depth rename ring.
type Manufacturer struct {
	ID               string  `db:"id"`
	ManufacturerName string  `db:"manufacturer_name"`
	PrevName         *string `db:"prev_manufacturer_name"`
	PrevPrevName     *string `db:"prev_prev_manufacturer_name"`
}
