package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel_desk/internal/config"
	"travel_desk/internal/middleware"
	"travel_desk/internal/models"
	"travel_desk/internal/workflow"
)

// parseRequestDate reads a "2006-01-02" form value, defaulting to now when
// absent or malformed so a hand-submitted form still lands on today.
func parseRequestDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Now()
	}
	return t
}

// EmployeeDashboard lists the employee's own requests submitted today.
func EmployeeDashboard(c *gin.Context) {
	employeeCode := middleware.SessionUserCode(c)

	trfs, err := workflow.ListEmployeeRequests(config.DB, employeeCode, workflow.Today())
	if err != nil {
		logrus.WithError(err).Error("EmployeeDashboard: error fetching requests")
		trfs = nil
	}

	c.HTML(http.StatusOK, "employeeDashboard.html", gin.H{
		"userCode": employeeCode,
		"requests": trfs,
	})
}

// ShowEmployeeRequestForm renders the travel request form.
func ShowEmployeeRequestForm(c *gin.Context) {
	c.HTML(http.StatusOK, "employeeTRF.html", gin.H{
		"userCode": middleware.SessionUserCode(c),
	})
}

type employeeRequestInput struct {
	HodID         string `form:"hodId" json:"hodId" binding:"required"`
	DateOfRequest string `form:"dateOfRequest" json:"dateOfRequest"`
	Purpose       string `form:"purpose" json:"purpose"`
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	ModeOfTravel  string `form:"modeOfTravel" json:"modeOfTravel"`
}

// CreateEmployeeRequest files a travel request addressed to an HOD. The
// employee code comes from the session, not the payload.
func CreateEmployeeRequest(c *gin.Context) {
	var input employeeRequestInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trf := models.EmployeeTravelRequest{
		EmployeeCode:  middleware.SessionUserCode(c),
		HodID:         input.HodID,
		DateOfRequest: parseRequestDate(input.DateOfRequest),
		Purpose:       input.Purpose,
		Origin:        input.Origin,
		Destination:   input.Destination,
		ModeOfTravel:  input.ModeOfTravel,
	}
	if err := workflow.CreateEmployeeRequest(config.DB, &trf); err != nil {
		logrus.WithError(err).Error("CreateEmployeeRequest: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "EMPTRF Req Send",
		"form":    trf,
	})
}
