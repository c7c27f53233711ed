package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel_desk/internal/config"
	"travel_desk/internal/middleware"
	"travel_desk/internal/models"
	"travel_desk/internal/workflow"
)

// HodDashboard shows pending requests addressed to the HOD ("received"),
// their own escalations ("sent"), and the motor pool schedule. An optional
// startDate/endDate query widens the window from the default of today.
func HodDashboard(c *gin.Context) {
	hodID := middleware.SessionUserCode(c)
	window := workflow.RangeFrom(c.Query("startDate"), c.Query("endDate"))

	received, err := workflow.ListReceivedRequests(config.DB, hodID, window)
	if err != nil {
		logrus.WithError(err).Error("HodDashboard: error fetching received requests")
		received = nil
	}
	sent, err := workflow.ListSentRequests(config.DB, hodID, window)
	if err != nil {
		logrus.WithError(err).Error("HodDashboard: error fetching sent requests")
		sent = nil
	}
	bookings, err := workflow.ListDriverBookings(config.DB, window)
	if err != nil {
		logrus.WithError(err).Error("HodDashboard: error fetching driver bookings")
		bookings = nil
	}

	c.HTML(http.StatusOK, "hodDashboard.html", gin.H{
		"userCode": hodID,
		"received": received,
		"sent":     sent,
		"bookings": bookings,
	})
}

// ShowBookingForm renders the driver assignment form.
func ShowBookingForm(c *gin.Context) {
	c.HTML(http.StatusOK, "driverBookingForm.html", gin.H{
		"userCode": middleware.SessionUserCode(c),
	})
}

// ShowHodRequestForm renders the HOD-to-admin travel request form.
func ShowHodRequestForm(c *gin.Context) {
	c.HTML(http.StatusOK, "hodTRF.html", gin.H{
		"userCode": middleware.SessionUserCode(c),
	})
}

type bookingInput struct {
	DriverID    string `form:"driverId" json:"driverId" binding:"required"`
	Date        string `form:"date" json:"date"`
	Purpose     string `form:"purpose" json:"purpose"`
	Origin      string `form:"origin" json:"origin"`
	Destination string `form:"destination" json:"destination"`
	Passengers  string `form:"passengers" json:"passengers"`
	VehicleNo   string `form:"vehicleNo" json:"vehicleNo"`
}

// CreateBooking saves a driver assignment submitted by the HOD.
func CreateBooking(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := models.DriverBooking{
		DriverID:    input.DriverID,
		Date:        parseRequestDate(input.Date),
		Purpose:     input.Purpose,
		Origin:      input.Origin,
		Destination: input.Destination,
		Passengers:  input.Passengers,
		VehicleNo:   input.VehicleNo,
		RequestedBy: middleware.SessionUserCode(c),
	}
	if err := workflow.CreateBooking(config.DB, &booking); err != nil {
		logrus.WithError(err).Error("CreateBooking: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking saved successfully",
		"booking": booking,
	})
}

type hodRequestInput struct {
	DateOfRequest string `form:"dateOfRequest" json:"dateOfRequest"`
	Purpose       string `form:"purpose" json:"purpose"`
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	ModeOfTravel  string `form:"modeOfTravel" json:"modeOfTravel"`
}

// CreateHodRequest escalates the HOD's own travel request to admin.
func CreateHodRequest(c *gin.Context) {
	var input hodRequestInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trf := models.HodTravelRequest{
		HodID:         middleware.SessionUserCode(c),
		DateOfRequest: parseRequestDate(input.DateOfRequest),
		Purpose:       input.Purpose,
		Origin:        input.Origin,
		Destination:   input.Destination,
		ModeOfTravel:  input.ModeOfTravel,
	}
	if err := workflow.CreateHodRequest(config.DB, &trf); err != nil {
		logrus.WithError(err).Error("CreateHodRequest: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "TRF Req Send",
		"form":    trf,
	})
}

// decisionParams pulls the record id and the decision value out of a
// decision request (form field or JSON body).
func decisionParams(c *gin.Context) (uint, models.Status, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid form ID")
		return 0, "", false
	}

	var body struct {
		Decision string `form:"decision" json:"decision" binding:"required"`
	}
	if err := c.ShouldBind(&body); err != nil {
		c.String(http.StatusBadRequest, "decision is required")
		return 0, "", false
	}

	decision, err := models.ParseDecision(body.Decision)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return 0, "", false
	}
	return uint(id), decision, true
}

// DecideEmployeeRequest handles the HOD dashboard decision buttons and
// redirects back to the dashboard.
func DecideEmployeeRequest(c *gin.Context) {
	id, decision, ok := decisionParams(c)
	if !ok {
		return
	}

	if _, err := workflow.DecideEmployeeRequest(config.DB, id, decision); err != nil {
		renderDecisionError(c, err, "DecideEmployeeRequest")
		return
	}
	c.Redirect(http.StatusFound, "/hod/dashboard")
}

// DecideEmployeeRequestAPI is the JSON variant of the same decision.
func DecideEmployeeRequestAPI(c *gin.Context) {
	id, decision, ok := decisionParams(c)
	if !ok {
		return
	}

	trf, err := workflow.DecideEmployeeRequest(config.DB, id, decision)
	if err != nil {
		renderDecisionErrorJSON(c, err, "DecideEmployeeRequestAPI")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Form decision updated successfully",
		"form":    trf,
	})
}

func renderDecisionError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		c.String(http.StatusNotFound, "Form not found")
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.String(http.StatusConflict, "Form already decided")
	default:
		logrus.WithError(err).Errorf("%s: decision failed", op)
		c.String(http.StatusInternalServerError, "Server error")
	}
}

func renderDecisionErrorJSON(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Form already decided"})
	default:
		logrus.WithError(err).Errorf("%s: decision failed", op)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
