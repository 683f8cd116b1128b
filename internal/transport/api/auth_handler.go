package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username          string  `binding:"required,min=3,max=150"                               json:"username"`
	Password          string  `binding:"required,min=8,max_bytes=72"                          json:"password"`
	Email             string  `binding:"omitempty,email,max=254"                              json:"email"`
	PhoneNumber       *string `binding:"omitempty,min=7,max=20"                               json:"phone_number"`
	UserType          string  `binding:"omitempty,oneof=regular shop_owner delivery diaspora" json:"user_type"`
	PreferredLanguage string  `binding:"omitempty,lang"                                       json:"preferred_language"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username:          params.Username,
		Password:          params.Password,
		Email:             params.Email,
		PhoneNumber:       params.PhoneNumber,
		UserType:          domain.UserType(params.UserType),
		PreferredLanguage: params.PreferredLanguage,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username or phone already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, gin.H{"user": newUserResponse(user), "token": jwtToken})
}

type UserLoginParams struct {
	Username string `binding:"required,min=1,max=150" json:"username"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user), "token": token})
}
