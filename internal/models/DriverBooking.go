package models

import (
	"time"

	"gorm.io/gorm"
)

// DriverBooking is a trip assignment an HOD hands to a driver. The driver
// fills in DistanceTraveled and TollUsage after the trip.
type DriverBooking struct {
	gorm.Model
	DriverID         string    `json:"driver_id" gorm:"index"` // User.UserID of the driver, advisory reference
	Date             time.Time `json:"date" gorm:"index"`
	Purpose          string    `json:"purpose"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Passengers       string    `json:"passengers"`
	VehicleNo        string    `json:"vehicle_no"`
	RequestedBy      string    `json:"requested_by"` // User.UserID of the HOD who assigned the trip
	DistanceTraveled string    `json:"distance_traveled"`
	TollUsage        string    `json:"toll_usage"`
}
