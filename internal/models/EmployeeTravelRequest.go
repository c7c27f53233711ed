package models

import (
	"time"

	"gorm.io/gorm"
)

// EmployeeTravelRequest (EMPTRF) is a travel request form an employee
// submits to their head of department. Only the status/decision pair is
// mutable after creation.
type EmployeeTravelRequest struct {
	gorm.Model
	EmployeeCode  string    `json:"employee_code" gorm:"index"` // User.UserID of the requester
	HodID         string    `json:"hod_id" gorm:"index"`        // User.UserID of the approver
	DateOfRequest time.Time `json:"date_of_request" gorm:"index"`
	Purpose       string    `json:"purpose"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	ModeOfTravel  string    `json:"mode_of_travel"`
	Status        Status    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Decision      Status    `json:"decision" gorm:"type:varchar(20);default:'pending'"`
}
