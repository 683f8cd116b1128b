package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// serviceErrors соответствие ошибок сервисного слоя http статусам. Клиенту отдается текст самой
// доменной ошибки, без контекста оберток.
var serviceErrors = []struct {
	err    error
	status int
}{
	{domain.ErrRecordNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrUserBlocked, http.StatusForbidden},
	{domain.ErrPasswordMissMatch, http.StatusUnauthorized},
	{domain.ErrNotEnoughBalance, http.StatusPaymentRequired},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrInvalidStatusTransition, http.StatusConflict},
	{domain.ErrAlreadyConfirmed, http.StatusConflict},
	{domain.ErrEscrowSettled, http.StatusConflict},
	{domain.ErrOutOfStock, http.StatusConflict},
	{domain.ErrInvalidLanguage, http.StatusUnprocessableEntity},
	{domain.ErrMixedSellers, http.StatusUnprocessableEntity},
	{domain.ErrOwnProduct, http.StatusUnprocessableEntity},
	{domain.ErrProductInactive, http.StatusUnprocessableEntity},
	{domain.ErrShopNotVerified, http.StatusUnprocessableEntity},
	{domain.ErrInvalidConfirmation, http.StatusUnprocessableEntity},
}

// abortWithServiceError прерывает запрос со статусом, соответствующим ошибке сервиса.
// Неизвестные ошибки отдаются как 500 без подробностей.
func abortWithServiceError(c *gin.Context, err error) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErr.Error(), "field": valErr.Field})
		return
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(m.status, gin.H{"error": m.err.Error()})
			return
		}
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

// abortWithBindError ошибки валидатора отдаются как 422, остальные ошибки разбора как 400.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
}

func getUserIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentUserIDKey)
	userID, _ := id.(int64)
	return userID
}

func getActor(c *gin.Context) service.Actor {
	role, _ := c.Get(middlewares.CurrentUserRoleKey)
	userRole, _ := role.(domain.UserType)
	return service.Actor{
		UserID: getUserIDFromContext(c),
		Role:   userRole,
		IP:     c.ClientIP(),
	}
}

// paramID разбирает положительный числовой параметр пути. При ошибке запрос прерывается с 400.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("invalid %s", name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

type PageQuery struct {
	Limit  uint `binding:"max=200" form:"limit"`
	Offset uint `form:"offset"`
}

func (p PageQuery) page() repoargs.Page {
	return repoargs.Page{Limit: p.Limit, Offset: p.Offset}
}

// openUpload открывает загруженный multipart файл. Закрыть файл обязан вызывающий.
func openUpload(fh *multipart.FileHeader) (service.FileUpload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileUpload{}, nil, fmt.Errorf("open uploaded file: %w", err)
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return service.FileUpload{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}
