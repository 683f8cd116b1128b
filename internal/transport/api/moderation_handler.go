package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	modSvs ModerationServicer
}

func NewModerationHandler(modSvs ModerationServicer) *ModerationHandler {
	return &ModerationHandler{modSvs: modSvs}
}

type CreateReportParams struct {
	Type              string `binding:"required,oneof=user product message delivery other" json:"type"`
	Description       string `binding:"required,max_bytes=5000"                           json:"description"`
	ReportedUserID    *int64 `binding:"omitempty,min=1"                                   json:"reported_user_id"`
	ReportedProductID *int64 `binding:"omitempty,min=1"                                   json:"reported_product_id"`
	ReportedMessageID *int64 `binding:"omitempty,min=1"                                   json:"reported_message_id"`
}

// CreateReport POST RouteGroup + ReportsRoute.
func (h *ModerationHandler) CreateReport(c *gin.Context) {
	var params CreateReportParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.modSvs.CreateReport(ctx, getActor(c), service.CreateReportArgs{
		Type:              domain.ReportType(params.Type),
		Description:       params.Description,
		ReportedUserID:    params.ReportedUserID,
		ReportedProductID: params.ReportedProductID,
		ReportedMessageID: params.ReportedMessageID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newReportResponse(report))
}

type ReportsQuery struct {
	PageQuery
	Status string `binding:"omitempty,oneof=pending investigating resolved dismissed" form:"status"`
}

// Reports GET RouteGroup + AdminReportsRoute.
func (h *ModerationHandler) Reports(c *gin.Context) {
	var q ReportsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reports, err := h.modSvs.Reports(ctx, getActor(c), domain.ReportStatusType(q.Status), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	var response = make([]ReportResponse, len(reports))
	for i := range reports {
		response[i] = newReportResponse(&reports[i])
	}
	c.JSON(http.StatusOK, response)
}

type ReportStatusParams struct {
	Status string `binding:"required,oneof=investigating resolved dismissed" json:"status"`
	Notes  string `binding:"max_bytes=5000"                                  json:"notes"`
}

// UpdateReportStatus POST RouteGroup + AdminReportStatusRoute.
func (h *ModerationHandler) UpdateReportStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params ReportStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.modSvs.UpdateReportStatus(ctx, getActor(c), id, domain.ReportStatusType(params.Status), params.Notes)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReportResponse(report))
}

// VerifyUser POST RouteGroup + AdminVerifyUserRoute.
func (h *ModerationHandler) VerifyUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.modSvs.VerifyUser(ctx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type BlockUserParams struct {
	Reason      string     `binding:"required,max_bytes=2000" json:"reason"`
	IsPermanent bool       `json:"is_permanent"`
	UnblockDate *time.Time `json:"unblock_date"`
}

// BlockUser POST RouteGroup + AdminBlockUserRoute. Без is_permanent нужна дата разблокировки в будущем.
func (h *ModerationHandler) BlockUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params BlockUserParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	block, err := h.modSvs.BlockUser(ctx, getActor(c), service.BlockUserArgs{
		UserID:      id,
		Reason:      params.Reason,
		IsPermanent: params.IsPermanent,
		UnblockDate: params.UnblockDate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":      block.UserID,
		"blocked_at":   block.BlockedAt,
		"reason":       block.Reason,
		"is_permanent": block.IsPermanent,
		"unblock_date": block.UnblockDate,
	})
}

// UnblockUser DELETE RouteGroup + AdminBlockUserRoute.
func (h *ModerationHandler) UnblockUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.modSvs.UnblockUser(ctx, getActor(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type ReviewVerificationParams struct {
	Approved *bool  `binding:"required"       json:"approved"`
	Notes    string `binding:"max_bytes=2000" json:"notes"`
}

// ReviewVerification POST RouteGroup + AdminBusinessVerificationRoute.
func (h *ModerationHandler) ReviewVerification(c *gin.Context) {
	userID, ok := paramID(c, "userID")
	if !ok {
		return
	}
	var params ReviewVerificationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bv, err := h.modSvs.ReviewBusinessVerification(ctx, getActor(c), userID, *params.Approved, params.Notes)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVerificationResponse(bv))
}

// VerifyPickupShop POST RouteGroup + AdminVerifyPickupShopRoute.
func (h *ModerationHandler) VerifyPickupShop(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shop, err := h.modSvs.VerifyPickupShop(ctx, getActor(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPickupShopResponse(shop))
}

type AssignCourierParams struct {
	CourierID int64 `binding:"required,min=1" json:"courier_id"`
}

// AssignCourier POST RouteGroup + AdminAssignCourierRoute.
func (h *ModerationHandler) AssignCourier(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params AssignCourierParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.modSvs.AssignCourier(ctx, getActor(c), id, params.CourierID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

type AdminLogResponse struct {
	ID            int64     `json:"id"`
	AdminID       int64     `json:"admin_id"`
	Action        string    `json:"action"`
	ModelAffected string    `json:"model_affected"`
	ObjectID      *int64    `json:"object_id,omitempty"`
	IPAddress     string    `json:"ip_address"`
	Details       string    `json:"details,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// AdminLogs GET RouteGroup + AdminLogsRoute.
func (h *ModerationHandler) AdminLogs(c *gin.Context) {
	var q PageQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	logs, err := h.modSvs.AdminLogs(ctx, getActor(c), q.page())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	var response = make([]AdminLogResponse, len(logs))
	for i, l := range logs {
		response[i] = AdminLogResponse{
			ID:            l.ID,
			AdminID:       l.AdminID,
			Action:        l.Action,
			ModelAffected: l.ModelAffected,
			ObjectID:      l.ObjectID,
			IPAddress:     l.IPAddress,
			Details:       l.Details,
			Timestamp:     l.Timestamp,
		}
	}
	c.JSON(http.StatusOK, response)
}
