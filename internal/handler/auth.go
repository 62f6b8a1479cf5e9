package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhvocab/api/internal/auth"
	"github.com/mhvocab/api/internal/config"
	"github.com/mhvocab/api/internal/middleware"
	"github.com/mhvocab/api/internal/model"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user, signs a session token and sets it as the token
// cookie. The stored password hash never serializes (json:"-" on the model).
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	c.ShouldBindJSON(&req)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	// Check if user already exists
	var existing model.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists with this email"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// The unique index on email closes the lookup-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists with this email"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Email, h.cfg.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Login verifies credentials and issues a fresh session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	c.ShouldBindJSON(&req)

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	var user model.User
	err := h.db.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Wrong credentials. User not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to look up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.Password)
	if err != nil {
		log.Printf("Failed to verify password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong password"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Email, h.cfg.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout clears the session cookie. The token itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user, looked up by the email in the verified
// claims. A deleted user with a live token lands here with a 404.
func (h *AuthHandler) Me(c *gin.Context) {
	email, exists := c.Get("userEmail")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var user model.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookieSameSite())
	c.SetCookie(middleware.TokenCookieName, token, int(auth.TokenExpiry.Seconds()), "/", "", h.cfg.Production(), true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(h.cookieSameSite())
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.cfg.Production(), true)
}

func (h *AuthHandler) cookieSameSite() http.SameSite {
	if h.cfg.Production() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
