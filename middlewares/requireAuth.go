package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Rovan44/shopfront-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the Bearer token and resolves the live session it
// points at. A valid token whose session was torn down (logout) is rejected.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing authorization token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}

		sessionID, _ := claims["sid"].(string)
		session, ok := sessions.Default.Get(sessionID)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session has ended, log in again"})
			return
		}

		ctx.Set("user", claims)
		ctx.Set("session", session)
		ctx.Next()
	}
}

// GetSession returns the session RequireAuth stored on the context.
func GetSession(ctx *gin.Context) *sessions.Session {
	value, exists := ctx.Get("session")
	if !exists {
		return nil
	}
	session, _ := value.(*sessions.Session)
	return session
}
