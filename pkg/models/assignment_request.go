package models

type AssignmentRequest struct {
	AssetID    int    `json:"asset_id"`
	EmployeeID int    `json:"employee_id"`
	Notes      string `json:"notes"`
}
