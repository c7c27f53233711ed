package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travel_desk/internal/config"
	"travel_desk/internal/middleware"
	"travel_desk/internal/workflow"
)

// AdminDashboard lists today's HOD travel requests awaiting decision.
func AdminDashboard(c *gin.Context) {
	trfs, err := workflow.ListHodRequests(config.DB, workflow.Today())
	if err != nil {
		logrus.WithError(err).Error("AdminDashboard: error fetching HOD requests")
		trfs = nil
	}

	c.HTML(http.StatusOK, "adminDashboard.html", gin.H{
		"userCode": middleware.SessionUserCode(c),
		"requests": trfs,
	})
}

// ListAllHodRequests shows the full HOD request ledger, newest first.
func ListAllHodRequests(c *gin.Context) {
	trfs, err := workflow.ListAllHodRequests(config.DB)
	if err != nil {
		logrus.WithError(err).Error("ListAllHodRequests: query failed")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.HTML(http.StatusOK, "hodRequestList.html", gin.H{
		"requests": trfs,
	})
}

// DecideHodRequest handles the admin dashboard decision buttons.
func DecideHodRequest(c *gin.Context) {
	id, decision, ok := decisionParams(c)
	if !ok {
		return
	}

	if _, err := workflow.DecideHodRequest(config.DB, id, decision); err != nil {
		renderDecisionError(c, err, "DecideHodRequest")
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DecideHodRequestAPI is the JSON variant of the admin decision.
func DecideHodRequestAPI(c *gin.Context) {
	id, decision, ok := decisionParams(c)
	if !ok {
		return
	}

	trf, err := workflow.DecideHodRequest(config.DB, id, decision)
	if err != nil {
		renderDecisionErrorJSON(c, err, "DecideHodRequestAPI")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Form decision updated successfully",
		"form":    trf,
	})
}
