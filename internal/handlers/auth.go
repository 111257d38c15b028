package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"orvela_back_end/internal/models"
	"orvela_back_end/internal/repository"
	"orvela_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

//
// 🟢 POST /signup
//
func Signup(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// email déjà pris ? seul ErrNotFound signifie "libre" : une erreur de
	// lecture ne doit pas laisser passer un doublon.
	_, err := userStore.FindByEmail(ctx, input.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email already in use"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create user"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create user"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		CartData: models.NewCartData(),
		Date:     time.Now(),
	}

	oid, err := userStore.Insert(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create user"})
		return
	}

	token, err := utils.GenerateToken(oid.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not sign token"})
		return
	}

	// e-mail de bienvenue en arrière-plan (no-op sans config SMTP)
	go func(email, username string) {
		if err := utils.SendWelcomeEmail(email, username); err != nil {
			log.Println("⚠️ Échec envoi e-mail de bienvenue:", err)
		}
	}(user.Email, user.Username)

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

//
// 🔑 POST /login
//
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := userStore.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "User email doesn't exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not read user"})
		return
	}

	if !utils.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Wrong password"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
