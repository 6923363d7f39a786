package httpapi

import (
	"errors"
	"net/http"

	userapp "cuff/internal/core/user/service"
	userPort "cuff/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		FirstName            string `json:"firstName" binding:"required"`
		LastName             string `json:"lastName" binding:"required"`
		Email                string `json:"email" binding:"required,email"`
		Password             string `json:"password" binding:"required,min=8"`
		NotificationType     string `json:"notificationType"`
		DietaryPreferences   string `json:"dietaryPreferences"`
		NotificationsEnabled bool   `json:"notificationsEnabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	u, err := ctl.uc.RegisterUser(c.Request.Context(), userPort.RegisterInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Password:             req.Password,
		NotificationType:     req.NotificationType,
		DietaryPreferences:   req.DietaryPreferences,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) LoginUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := ctl.uc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	u, err := ctl.uc.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.uc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.uc.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *UserController) UpdatePreferences(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req struct {
		NotificationType   string `json:"notificationType" binding:"required"`
		DietaryPreferences string `json:"dietaryPreferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	prefs, err := ctl.uc.UpdatePreferences(c.Request.Context(), userID, userPort.PreferencesDTO{
		NotificationType:   req.NotificationType,
		DietaryPreferences: req.DietaryPreferences,
	})
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
