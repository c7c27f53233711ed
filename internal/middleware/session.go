package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed session token for browser flows.
const SessionCookie = "trf_session"

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken issues a session token carrying {id, userId, role}.
func GenerateToken(id uint, userCode, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   id,
		"user_code": userCode,
		"role":      role,
		"exp":       time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// SetSessionCookie attaches the token to the response for browser flows.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int((72 * time.Hour).Seconds()), "/", "", false, true)
}

// ClearSessionCookie ends the browser session.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// sessionFromRequest resolves the token from the session cookie or a Bearer
// header and returns the validated claims.
func sessionFromRequest(c *gin.Context) (jwt.MapClaims, bool) {
	tokenString, err := c.Cookie(SessionCookie)
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, false
		}
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// storeSession puts the authorized context into the gin context. Handlers
// read these keys instead of trusting anything the caller supplied.
func storeSession(c *gin.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["user_id"])
	c.Set("user_code", claims["user_code"])
	c.Set("role", claims["role"])
}

// RequireRole gates a browser route. Missing session or role mismatch
// redirects to the landing page rather than raising an error status.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionFromRequest(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		if role, ok := claims["role"].(string); !ok || role != requiredRole {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		storeSession(c, claims)
		c.Next()
	}
}

// RequireAPIRole gates a JSON route: 401 without a valid session, 403 when
// the role does not match.
func RequireAPIRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid session token"})
			return
		}
		if role, ok := claims["role"].(string); !ok || role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		storeSession(c, claims)
		c.Next()
	}
}

// SessionUserCode returns the acting user's userId from the gate context.
func SessionUserCode(c *gin.Context) string {
	if v, ok := c.Get("user_code"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SessionRole returns the acting user's role from the gate context.
func SessionRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
