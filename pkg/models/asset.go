package models

import "time"

type Asset struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Type          string    `json:"type" db:"type"`
	Serial        string    `json:"serial_number" db:"serial_number"`
	Status        string    `json:"status" db:"status"`
	PurchaseDate  time.Time `json:"purchase_date" db:"purchase_date"`
	PurchasePrice float64   `json:"purchase_price" db:"purchase_price"`
}
