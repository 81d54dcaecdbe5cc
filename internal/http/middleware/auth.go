package middleware

import (
	"net/http"
	"strings"

	"tourism/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user"

// AuthUser is the requester identity asserted by a verified token. Full name
// and email ride along so the booking ledger can snapshot them without a
// user lookup.
type AuthUser struct {
	UserID   int64
	FullName string
	Email    string
	Role     string
}

// RequireAuth verifies the Bearer token and stores the requester identity in
// the context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		user := AuthUser{
			FullName: claimString(claims, "full_name"),
			Email:    claimString(claims, "email"),
			Role:     claimString(claims, "role"),
		}
		if id, ok := claims["user_id"].(float64); ok {
			user.UserID = int64(id)
		}
		if user.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetAuthUser(c)
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.Next()
	}
}

// GetAuthUser extracts the requester identity stored by RequireAuth.
func GetAuthUser(c *gin.Context) (AuthUser, bool) {
	if v, ok := c.Get(authUserKey); ok {
		if u, ok := v.(AuthUser); ok {
			return u, true
		}
	}
	return AuthUser{}, false
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
