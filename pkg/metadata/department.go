package metadata

import (
	"fmt"
	"strings"
)

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentIT          Department = "IT"
	DepartmentOperations  Department = "Operations"
)

var departments = []Department{
	DepartmentEngineering,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentHR,
	DepartmentFinance,
	DepartmentIT,
	DepartmentOperations,
}

// NewDepartment resolves free-form input to the canonical department name.
func NewDepartment(value string) (Department, error) {
	trimmed := strings.TrimSpace(value)
	for _, d := range departments {
		if strings.EqualFold(trimmed, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid department: %s", value)
}

func (d Department) IsValid() bool {
	for _, known := range departments {
		if d == known {
			return true
		}
	}
	return false
}

func (d Department) String() string {
	return string(d)
}
