package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel_desk/internal/config"
	"travel_desk/internal/middleware"
	"travel_desk/internal/workflow"
)

// DriverDashboard lists today's bookings for the signed-in driver. The day
// window is fixed for this role; drivers have no date-range override.
func DriverDashboard(c *gin.Context) {
	driverID := middleware.SessionUserCode(c)

	bookings, err := workflow.ListBookingsForDriver(config.DB, driverID, workflow.Today())
	if err != nil {
		logrus.WithError(err).Error("DriverDashboard: error fetching bookings")
		bookings = nil
	}

	c.HTML(http.StatusOK, "driverDashboard.html", gin.H{
		"userCode": driverID,
		"bookings": bookings,
	})
}

// DriverHistory lists every booking ever assigned to the driver.
func DriverHistory(c *gin.Context) {
	driverID := middleware.SessionUserCode(c)

	bookings, err := workflow.ListBookingHistory(config.DB, driverID)
	if err != nil {
		logrus.WithError(err).Error("DriverHistory: error fetching bookings")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.HTML(http.StatusOK, "driverHistory.html", gin.H{
		"userCode": driverID,
		"bookings": bookings,
	})
}

// ShowUsageForm renders the distance/toll form pre-filled with a booking id.
func ShowUsageForm(c *gin.Context) {
	c.HTML(http.StatusOK, "driverForm.html", gin.H{
		"bookingId": c.Param("bookingId"),
	})
}

type usageInput struct {
	BookingID        string `form:"bookingId" json:"bookingId" binding:"required"`
	DistanceTraveled string `form:"distanceTraveled" json:"distanceTraveled"`
	TollUsage        string `form:"tollUsage" json:"tollUsage"`
}

// UpdateBooking records distance and toll usage on one of the driver's own
// bookings.
func UpdateBooking(c *gin.Context) {
	var input usageInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "bookingId is required")
		return
	}

	id, err := strconv.ParseUint(input.BookingID, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	// The booking must belong to the driver holding the session.
	driverID := middleware.SessionUserCode(c)
	var owner struct{ DriverID string }
	if err := config.DB.Table("driver_bookings").Select("driver_id").
		Where("id = ?", uint(id)).Scan(&owner).Error; err != nil {
		logrus.WithError(err).Error("UpdateBooking: ownership lookup failed")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	if owner.DriverID != "" && owner.DriverID != driverID {
		c.String(http.StatusForbidden, "Booking is assigned to a different driver")
		return
	}

	booking, err := workflow.UpdateBookingUsage(config.DB, uint(id), input.DistanceTraveled, input.TollUsage)
	if err != nil {
		if errors.Is(err, workflow.ErrNotFound) {
			c.String(http.StatusNotFound, "Booking not found")
			return
		}
		logrus.WithError(err).Error("UpdateBooking: update failed")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}
