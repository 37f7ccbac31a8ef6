package dto

// CreateManufacturerRequest defines the data needed to register a manufacturer.
type CreateManufacturerRequest struct {
	ManufacturerName string `json:"manufacturerName"`
}

// UpdateManufacturerRequest renames a manufacturer; previous names are
// maintained by the service, not accepted from the caller.
type UpdateManufacturerRequest struct {
	ManufacturerName string `json:"manufacturerName"`
}
