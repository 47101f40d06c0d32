// File: /controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"iranbazaar-api/models"
	"iranbazaar-api/services"
)

// UserStore is the slice of user persistence the auth handlers need.
type UserStore interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}

// TokenIssuer issues the access/refresh pair and exchanges refresh tokens.
type TokenIssuer interface {
	IssuePair(userID, username string) (*services.TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

// WelcomeMailer sends the post-registration greeting.
type WelcomeMailer interface {
	SendWelcomeEmail(email, username string) error
}

type AuthController struct {
	users  UserStore
	tokens TokenIssuer
	mailer WelcomeMailer
}

func NewAuthController(users UserStore, tokens TokenIssuer, mailer WelcomeMailer) *AuthController {
	return &AuthController{
		users:  users,
		tokens: tokens,
		mailer: mailer,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if username is taken
	if _, err := ac.users.FindByUsername(req.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := ac.users.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if ac.mailer != nil {
		go func() {
			if err := ac.mailer.SendWelcomeEmail(user.Email, user.Username); err != nil {
				log.Printf("Failed to send welcome email: %v", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password are required."})
		return
	}

	user, err := ac.users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid username or password."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid username or password."})
		return
	}

	pair, err := ac.tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Refresh token is required."})
		return
	}

	access, err := ac.tokens.Refresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired refresh token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}
