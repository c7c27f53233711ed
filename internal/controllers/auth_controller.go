package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travel_desk/internal/config"
	"travel_desk/internal/middleware"
	"travel_desk/internal/models"
)

type loginInput struct {
	UserID   string `form:"userId" json:"userId" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// dashboardPath maps a role to its landing dashboard.
func dashboardPath(role string) string {
	switch role {
	case "admin":
		return "/admin/dashboard"
	case "driver":
		return "/driver/dashboard"
	case "hod":
		return "/hod/dashboard"
	case "employee":
		return "/employee/dashboard"
	default:
		return ""
	}
}

// ShowLanding renders the anonymous landing/login page.
func ShowLanding(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Login authenticates a user, establishes the session cookie and redirects
// to the dashboard for their role.
func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "userId and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ?", input.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusUnauthorized, "Invalid credentials")
		} else {
			logrus.WithError(err).Error("Login: database error fetching user")
			c.String(http.StatusInternalServerError, "Server error")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	target := dashboardPath(user.Role)
	if target == "" {
		c.String(http.StatusUnauthorized, "Invalid role")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.UserID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("Login: could not generate session token")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, target)
}

// Logout clears the session cookie and returns to the landing page.
func Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

type provisionInput struct {
	UserID     string `json:"user_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department"`
	Password   string `json:"password" binding:"required"`
}

// ProvisionUser creates an account. Admin only; this is the sole write path
// into the identity store after bootstrap.
func ProvisionUser(c *gin.Context) {
	var input provisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	switch role {
	case "admin", "driver", "hod", "employee":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		UserID:     input.UserID,
		Name:       input.Name,
		Role:       role,
		Department: input.Department,
		Password:   string(hash),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "userId already in use"})
			return
		}
		logrus.WithError(err).Error("ProvisionUser: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"ID":         user.ID,
			"user_id":    user.UserID,
			"name":       user.Name,
			"role":       user.Role,
			"department": user.Department,
		},
	})
}
