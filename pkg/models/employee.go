package models

type Employee struct {
	ID         int    `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Email      string `json:"email" db:"email"`
	Department string `json:"department" db:"department"`
}
