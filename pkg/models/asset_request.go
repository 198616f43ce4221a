package models

// AssetRequest carries the create-asset form fields. PurchasePrice arrives as
// decimal text and is parsed by the service. AssigneeID, when present, makes
// the create path also open an assignment for that employee.
type AssetRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Serial        string `json:"serial_number"`
	PurchaseDate  string `json:"purchase_date"`
	PurchasePrice string `json:"purchase_price"`
	AssigneeID    *int   `json:"assignee_id,omitempty"`
}

// UpdateAssetRequest is a full replacement of an existing asset's fields.
// Status is operator-settable here.
type UpdateAssetRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Serial        string  `json:"serial_number"`
	Status        string  `json:"status"`
	PurchaseDate  string  `json:"purchase_date"`
	PurchasePrice float64 `json:"purchase_price"`
}
