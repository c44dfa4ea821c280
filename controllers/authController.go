package controllers

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/Rovan44/shopfront-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgLoggedOut             = "Logged out successfully."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper carrying the underlying error detail
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

var (
	accountsOnce sync.Once
	accounts     []models.User
)

// demoAccounts builds the two fixed storefront logins. Passwords come from
// the environment and are stored hashed for the lifetime of the process.
func demoAccounts() []models.User {
	accountsOnce.Do(func() {
		entries := []struct {
			username string
			role     string
			envKey   string
			fallback string
		}{
			{"user", "user", "SHOP_USER_PASSWORD", "user123"},
			{"admin", "admin", "SHOP_ADMIN_PASSWORD", "admin123"},
		}
		for _, entry := range entries {
			hashed, err := hashPassword(initializers.Getenv(entry.envKey, entry.fallback))
			if err != nil {
				log.Println("Password hashing error:", err)
				continue
			}
			accounts = append(accounts, models.User{
				Username: entry.username,
				Password: hashed,
				Role:     entry.role,
			})
		}
	})
	return accounts
}

func findAccount(username string) (models.User, bool) {
	for _, account := range demoAccounts() {
		if account.Username == username {
			return account, true
		}
	}
	return models.User{}, false
}

func generateJWT(session *sessions.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": session.Username,
		"role":     session.Role,
		"sid":      session.ID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Login authenticates a storefront account and opens a fresh session with an
// empty cart.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	account, found := findAccount(loginData.Username)
	if !found {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(account.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	session := sessions.Default.Create(account.Username, account.Role)
	tokenString, err := generateJWT(session)
	if err != nil {
		log.Println("JWT generation error:", err)
		sessions.Default.Remove(session.ID)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token":    tokenString,
		"username": account.Username,
		"role":     account.Role,
	})
}

// Logout tears the session down; the cart does not survive it.
func Logout(ctx *gin.Context) {
	session := middlewares.GetSession(ctx)
	if session != nil {
		sessions.Default.Remove(session.ID)
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}
