package models

import (
	"time"

	"gorm.io/gorm"
)

// HodTravelRequest (HODTRF) is a head of department's own travel request,
// escalated to an administrator for decision. Same lifecycle as
// EmployeeTravelRequest.
type HodTravelRequest struct {
	gorm.Model
	HodID         string    `json:"hod_id" gorm:"index"` // User.UserID of the requester
	DateOfRequest time.Time `json:"date_of_request" gorm:"index"`
	Purpose       string    `json:"purpose"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	ModeOfTravel  string    `json:"mode_of_travel"`
	Status        Status    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Decision      Status    `json:"decision" gorm:"type:varchar(20);default:'pending'"`
}
