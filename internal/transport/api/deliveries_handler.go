package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DeliveriesHandler struct {
	deliverySvs DeliveryServicer
}

func NewDeliveriesHandler(deliverySvs DeliveryServicer) *DeliveriesHandler {
	return &DeliveriesHandler{deliverySvs: deliverySvs}
}

type TrackResponse struct {
	Delivery     *DeliveryResponse     `json:"delivery"`
	History      []TrackingResponse    `json:"history"`
	Confirmation *ConfirmationResponse `json:"confirmation,omitempty"`
}

// Track GET RouteGroup + TrackRoute.
func (h *DeliveriesHandler) Track(c *gin.Context) {
	code := c.Param("code")
	if code == "" || len(code) > 64 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.deliverySvs.Track(ctx, getActor(c), code)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	history := make([]TrackingResponse, len(view.History))
	for i, t := range view.History {
		history[i] = TrackingResponse{
			Status:    t.Status,
			Location:  t.Location,
			Latitude:  t.Latitude,
			Longitude: t.Longitude,
			Notes:     t.Notes,
			CreatedAt: t.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, TrackResponse{
		Delivery:     newDeliveryResponse(view.Delivery),
		History:      history,
		Confirmation: newConfirmationResponse(view.Confirmation),
	})
}

// QRCode GET RouteGroup + DeliveryQRRoute. Отдает PNG с QR токеном доставки.
func (h *DeliveriesHandler) QRCode(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	png, err := h.deliverySvs.QRCode(ctx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// IssueOTP POST RouteGroup + DeliveryOTPRoute. Код отдается покупателю, который сообщает его курьеру
// или владельцу пункта выдачи при получении.
func (h *DeliveriesHandler) IssueOTP(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	code, err := h.deliverySvs.IssueOTP(ctx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, gin.H{"otp": code})
}

// Accept POST RouteGroup + DeliveryAcceptRoute. Курьер берет доставку себе.
func (h *DeliveriesHandler) Accept(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.deliverySvs.Accept(ctx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

type UpdateStatusParams struct {
	Status    string           `binding:"required,oneof=in_transit at_pickup_shop cancelled" json:"status"`
	Location  string           `binding:"max=255"                                           json:"location"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
	Notes     string           `binding:"max_bytes=2000"                                    json:"notes"`
}

// UpdateStatus POST RouteGroup + DeliveryStatusRoute.
func (h *DeliveriesHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params UpdateStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.deliverySvs.UpdateStatus(ctx, getActor(c), service.UpdateDeliveryStatusArgs{
		DeliveryID: id,
		Status:     domain.DeliveryStatusType(params.Status),
		Location:   params.Location,
		Latitude:   params.Latitude,
		Longitude:  params.Longitude,
		Notes:      params.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

type ConfirmParams struct {
	Method string `binding:"required,oneof=qr_code otp admin" json:"method"`
	QRCode string `binding:"max=128"                          json:"qr_code"`
	OTP    string `binding:"max=16"                           json:"otp"`
	Notes  string `binding:"max_bytes=2000"                   json:"notes"`
}

type ConfirmResponse struct {
	Delivery     *DeliveryResponse     `json:"delivery"`
	Confirmation *ConfirmationResponse `json:"confirmation"`
	Settlement   *SettlementResponse   `json:"settlement,omitempty"`
}

// Confirm POST RouteGroup + DeliveryConfirmRoute. Подтверждение получения, после которого эскроу
// выплачивается продавцу.
func (h *DeliveriesHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ConfirmParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.deliverySvs.Confirm(ctx, getActor(c), service.ConfirmDeliveryArgs{
		DeliveryID: id,
		Method:     domain.ConfirmationMethodType(params.Method),
		QRCode:     params.QRCode,
		OTP:        params.OTP,
		Notes:      params.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := ConfirmResponse{
		Delivery:     newDeliveryResponse(res.Delivery),
		Confirmation: newConfirmationResponse(res.Confirmation),
	}
	if res.Settlement != nil {
		response.Settlement = &SettlementResponse{
			SellerCredit: res.Settlement.SellerCredit,
			Commission:   res.Settlement.Commission,
			SellerNet:    res.Settlement.SellerNet(),
		}
	}
	c.JSON(http.StatusOK, response)
}
