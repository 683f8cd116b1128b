package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ProfileHandler struct {
	userService UserServicer
}

func NewProfileHandler(userService UserServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Show GET RouteGroup + ProfileRoute.
func (h *ProfileHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.userService.Profile(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

type UpdateProfileParams struct {
	State             string  `binding:"max=100"                          json:"state"`
	LGA               string  `binding:"max=100"                          json:"lga"`
	Community         string  `binding:"max=100"                          json:"community"`
	Bio               string  `binding:"max_bytes=2000"                   json:"bio"`
	DateOfBirth       *string `binding:"omitempty,datetime=2006-01-02"    json:"date_of_birth"`
	PreferredLanguage string  `binding:"omitempty,lang"                   json:"preferred_language"`
}

// Update PUT RouteGroup + ProfileRoute.
func (h *ProfileHandler) Update(c *gin.Context) {
	var params UpdateProfileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var dob *time.Time
	if params.DateOfBirth != nil {
		// формат уже проверен тегом datetime.
		t, _ := time.Parse(dateLayout, *params.DateOfBirth)
		dob = &t
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.userService.UpdateProfile(ctx, service.UpdateProfileArgs{
		UserID:            getUserIDFromContext(c),
		State:             params.State,
		LGA:               params.LGA,
		Community:         params.Community,
		Bio:               params.Bio,
		DateOfBirth:       dob,
		PreferredLanguage: params.PreferredLanguage,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// UploadPicture POST RouteGroup + ProfilePictureRoute. Ожидает multipart поле picture.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	fh, err := c.FormFile("picture")
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("picture file is required")).
			SetType(gin.ErrorTypePublic)
		return
	}
	upload, closer, err := openUpload(fh)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		return
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(c, UploadServiceTimeout)
	defer cancel()

	profile, err := h.userService.UploadProfilePicture(ctx, getUserIDFromContext(c), upload)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

type BusinessVerificationParams struct {
	RCNumber string `binding:"max=50" form:"rc_number"`
	TIN      string `binding:"max=50" form:"tin"`
}

// SubmitVerification POST RouteGroup + BusinessVerificationRoute. multipart форма с полями rc_number, tin и
// необязательным файлом certificate.
func (h *ProfileHandler) SubmitVerification(c *gin.Context) {
	var params BusinessVerificationParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	args := service.SubmitVerificationArgs{
		UserID:   getUserIDFromContext(c),
		RCNumber: params.RCNumber,
		TIN:      params.TIN,
	}
	if fh, fileErr := c.FormFile("certificate"); fileErr == nil {
		upload, closer, err := openUpload(fh)
		if err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
			return
		}
		defer closer.Close()
		args.Certificate = &upload
	}

	ctx, cancel := context.WithTimeout(c, UploadServiceTimeout)
	defer cancel()

	bv, err := h.userService.SubmitBusinessVerification(ctx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newVerificationResponse(bv))
}

type DashboardResponse struct {
	Profile  ProfileResponse   `json:"profile"`
	Wallet   *WalletResponse   `json:"wallet"`
	Orders   []OrderResponse   `json:"recent_orders"`
	Products []ProductResponse `json:"recent_products"`
}

// Dashboard GET RouteGroup + DashboardRoute.
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	d, err := h.userService.Dashboard(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{
		Profile:  newProfileResponse(d.Profile),
		Wallet:   newWalletResponse(d.Wallet),
		Orders:   newOrdersResponse(d.Orders),
		Products: newProductsResponse(d.Products),
	})
}
