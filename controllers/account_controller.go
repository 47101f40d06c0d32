// File: /controllers/account_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	users UserStore
}

func NewAccountController(users UserStore) *AccountController {
	return &AccountController{users: users}
}

func (ac *AccountController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := ac.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}
