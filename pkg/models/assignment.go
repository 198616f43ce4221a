package models

import "time"

// Assignment links one asset to one employee. It is open while ReturnDate
// is absent; at most one open assignment may exist per asset.
type Assignment struct {
	ID           int        `json:"id" db:"id"`
	AssetID      int        `json:"asset_id" db:"asset_id"`
	EmployeeID   int        `json:"employee_id" db:"employee_id"`
	AssignedDate time.Time  `json:"assigned_date" db:"assigned_date"`
	ReturnDate   *time.Time `json:"return_date" db:"return_date"`
	Notes        string     `json:"notes" db:"notes"`
	Asset        *Asset     `json:"asset,omitempty"`
	Employee     *Employee  `json:"employee,omitempty"`
}

func (a *Assignment) IsOpen() bool {
	return a.ReturnDate == nil
}

type FlatAssignmentRecord struct {
	ID                 int        `db:"assignment_id"`
	AssetID            int        `db:"asset_id"`
	EmployeeID         int        `db:"employee_id"`
	AssignedDate       time.Time  `db:"assigned_date"`
	ReturnDate         *time.Time `db:"return_date"`
	Notes              string     `db:"notes"`
	AssetName          string     `db:"asset_name"`
	AssetType          string     `db:"asset_type"`
	AssetSerial        string     `db:"asset_serial"`
	AssetStatus        string     `db:"asset_status"`
	AssetPurchaseDate  time.Time  `db:"asset_purchase_date"`
	AssetPurchasePrice float64    `db:"asset_purchase_price"`
	EmployeeName       string     `db:"employee_name"`
	EmployeeEmail      string     `db:"employee_email"`
	EmployeeDepartment string     `db:"employee_department"`
}

func (fa *FlatAssignmentRecord) TransformToAssignment() Assignment {
	return Assignment{
		ID:           fa.ID,
		AssetID:      fa.AssetID,
		EmployeeID:   fa.EmployeeID,
		AssignedDate: fa.AssignedDate,
		ReturnDate:   fa.ReturnDate,
		Notes:        fa.Notes,
		Asset: &Asset{
			ID:            fa.AssetID,
			Name:          fa.AssetName,
			Type:          fa.AssetType,
			Serial:        fa.AssetSerial,
			Status:        fa.AssetStatus,
			PurchaseDate:  fa.AssetPurchaseDate,
			PurchasePrice: fa.AssetPurchasePrice,
		},
		Employee: &Employee{
			ID:         fa.EmployeeID,
			Name:       fa.EmployeeName,
			Email:      fa.EmployeeEmail,
			Department: fa.EmployeeDepartment,
		},
	}
}
