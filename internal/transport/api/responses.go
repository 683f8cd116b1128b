package api

import (
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/shopspring/decimal"
)

// Денежные суммы сериализуются decimal.Decimal строкой ("12.50"), чтобы не терять точность.

type UserResponse struct {
	ID                int64           `json:"id"`
	Username          string          `json:"username"`
	Email             string          `json:"email,omitempty"`
	PhoneNumber       *string         `json:"phone_number,omitempty"`
	UserType          domain.UserType `json:"user_type"`
	IsVerified        bool            `json:"is_verified"`
	PreferredLanguage domain.Language `json:"preferred_language"`
	CreatedAt         time.Time       `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		UserType:          u.UserType,
		IsVerified:        u.IsVerified,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}

type ProfileResponse struct {
	User        UserResponse `json:"user"`
	PictureURL  string       `json:"picture_url,omitempty"`
	State       string       `json:"state"`
	LGA         string       `json:"lga"`
	Community   string       `json:"community"`
	Bio         string       `json:"bio"`
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
}

func newProfileResponse(p *service.ProfileView) ProfileResponse {
	return ProfileResponse{
		User:        newUserResponse(p.User),
		PictureURL:  p.PictureURL,
		State:       p.Profile.State,
		LGA:         p.Profile.LGA,
		Community:   p.Profile.Community,
		Bio:         p.Profile.Bio,
		DateOfBirth: p.Profile.DateOfBirth,
	}
}

type VerificationResponse struct {
	UserID         int64                         `json:"user_id"`
	RCNumber       string                        `json:"rc_number"`
	TIN            string                        `json:"tin"`
	HasCertificate bool                          `json:"has_certificate"`
	Status         domain.VerificationStatusType `json:"status"`
	Notes          string                        `json:"notes,omitempty"`
	SubmittedAt    time.Time                     `json:"submitted_at"`
	VerifiedAt     *time.Time                    `json:"verified_at,omitempty"`
}

func newVerificationResponse(bv *domain.BusinessVerification) VerificationResponse {
	return VerificationResponse{
		UserID:         bv.UserID,
		RCNumber:       bv.RCNumber,
		TIN:            bv.TIN,
		HasCertificate: bv.CertificateKey != nil,
		Status:         bv.Status,
		Notes:          bv.Notes,
		SubmittedAt:    bv.SubmittedAt,
		VerifiedAt:     bv.VerifiedAt,
	}
}

type WalletResponse struct {
	ID       int64           `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
}

func newWalletResponse(w *domain.Wallet) *WalletResponse {
	if w == nil {
		return nil
	}
	return &WalletResponse{ID: w.ID, Balance: w.Balance, IsActive: w.IsActive}
}

type TransactionResponse struct {
	ID          int64                        `json:"id"`
	Direction   domain.DirectionType         `json:"direction"`
	Amount      decimal.Decimal              `json:"amount"`
	Type        domain.TransactionType       `json:"type"`
	Status      domain.TransactionStatusType `json:"status"`
	Reference   string                       `json:"reference"`
	Description string                       `json:"description,omitempty"`
	OrderID     *int64                       `json:"order_id,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Direction:   t.Direction,
		Amount:      t.Amount,
		Type:        t.Type,
		Status:      t.Status,
		Reference:   t.Reference,
		Description: t.Description,
		OrderID:     t.OrderID,
		CreatedAt:   t.CreatedAt,
	}
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, ParentID: c.ParentID}
}

type ProductResponse struct {
	ID                int64           `json:"id"`
	SellerID          int64           `json:"seller_id"`
	CategoryID        *int64          `json:"category_id,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int64           `json:"quantity_available"`
	Location          string          `json:"location"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		SellerID:          p.SellerID,
		CategoryID:        p.CategoryID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		QuantityAvailable: p.QuantityAvailable,
		Location:          p.Location,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
	}
}

func newProductsResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = newProductResponse(&products[i])
	}
	return res
}

type ImageResponse struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

func newImageResponse(img *service.ImageView) ImageResponse {
	return ImageResponse{ID: img.ID, URL: img.URL, IsPrimary: img.IsPrimary}
}

type OrderResponse struct {
	ID              int64                  `json:"id"`
	BuyerID         int64                  `json:"buyer_id"`
	SellerID        int64                  `json:"seller_id"`
	Status          domain.OrderStatusType `json:"status"`
	ShippingAddress string                 `json:"shipping_address"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}
}

func newOrdersResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = newOrderResponse(&orders[i])
	}
	return res
}

type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func newOrderItemsResponse(items []domain.OrderItem) []OrderItemResponse {
	res := make([]OrderItemResponse, len(items))
	for i, item := range items {
		res[i] = OrderItemResponse{ProductID: item.ProductID, Quantity: item.Quantity, Price: item.Price}
	}
	return res
}

type DeliveryResponse struct {
	ID                 int64                     `json:"id"`
	OrderID            int64                     `json:"order_id"`
	CourierID          *int64                    `json:"courier_id,omitempty"`
	PickupShopID       *int64                    `json:"pickup_shop_id,omitempty"`
	Status             domain.DeliveryStatusType `json:"status"`
	TrackingCode       string                    `json:"tracking_code"`
	EstimatedDate      *time.Time                `json:"estimated_date,omitempty"`
	ActualDeliveryDate *time.Time                `json:"actual_delivery_date,omitempty"`
	Notes              string                    `json:"notes,omitempty"`
}

func newDeliveryResponse(d *domain.Delivery) *DeliveryResponse {
	if d == nil {
		return nil
	}
	// QR токен не отдается: он выдается только картинкой по отдельному запросу.
	return &DeliveryResponse{
		ID:                 d.ID,
		OrderID:            d.OrderID,
		CourierID:          d.CourierID,
		PickupShopID:       d.PickupShopID,
		Status:             d.Status,
		TrackingCode:       d.TrackingCode,
		EstimatedDate:      d.EstimatedDate,
		ActualDeliveryDate: d.ActualDeliveryDate,
		Notes:              d.Notes,
	}
}

type TrackingResponse struct {
	Status    domain.DeliveryStatusType `json:"status"`
	Location  string                    `json:"location,omitempty"`
	Latitude  *decimal.Decimal          `json:"latitude,omitempty"`
	Longitude *decimal.Decimal          `json:"longitude,omitempty"`
	Notes     string                    `json:"notes,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

type ConfirmationResponse struct {
	ConfirmedBy int64                         `json:"confirmed_by"`
	Method      domain.ConfirmationMethodType `json:"method"`
	ConfirmedAt time.Time                     `json:"confirmed_at"`
	Notes       string                        `json:"notes,omitempty"`
}

func newConfirmationResponse(c *domain.DeliveryConfirmation) *ConfirmationResponse {
	if c == nil {
		return nil
	}
	return &ConfirmationResponse{ConfirmedBy: c.ConfirmedBy, Method: c.Method, ConfirmedAt: c.ConfirmedAt, Notes: c.Notes}
}

type SettlementResponse struct {
	SellerCredit decimal.Decimal `json:"seller_credit"`
	Commission   decimal.Decimal `json:"commission"`
	SellerNet    decimal.Decimal `json:"seller_net"`
}

type PickupShopResponse struct {
	ID             int64           `json:"id"`
	OwnerID        int64           `json:"owner_id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	State          string          `json:"state"`
	LGA            string          `json:"lga"`
	Community      string          `json:"community"`
	PhoneNumber    string          `json:"phone_number"`
	IsVerified     bool            `json:"is_verified"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

func newPickupShopResponse(p *domain.PickupShop) PickupShopResponse {
	return PickupShopResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		Address:        p.Address,
		State:          p.State,
		LGA:            p.LGA,
		Community:      p.Community,
		PhoneNumber:    p.PhoneNumber,
		IsVerified:     p.IsVerified,
		CommissionRate: p.CommissionRate,
	}
}

type ConversationResponse struct {
	ID             int64      `json:"id"`
	OrderID        *int64     `json:"order_id,omitempty"`
	ParticipantIDs []int64    `json:"participant_ids"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
	UnreadCount    int64      `json:"unread_count"`
}

func newConversationResponse(c *domain.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:             c.ID,
		OrderID:        c.OrderID,
		ParticipantIDs: c.ParticipantIDs,
		UpdatedAt:      c.UpdatedAt,
	}
}

func newConversationSummaryResponse(s *repoargs.ConversationSummary) ConversationResponse {
	res := newConversationResponse(&s.Conversation)
	res.LastMessageAt = s.LastMessageAt
	res.UnreadCount = s.UnreadCount
	return res
}

type AttachmentResponse struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url,omitempty"`
}

type MessageResponse struct {
	ID               int64                `json:"id"`
	ConversationID   int64                `json:"conversation_id"`
	SenderID         int64                `json:"sender_id"`
	Content          string               `json:"content"`
	OriginalLanguage domain.Language      `json:"original_language"`
	Translation      *string              `json:"translation,omitempty"`
	IsRead           bool                 `json:"is_read"`
	CreatedAt        time.Time            `json:"created_at"`
	Attachments      []AttachmentResponse `json:"attachments"`
}

func newMessageResponse(m *domain.Message, attachments []domain.MessageAttachment, urls []string) MessageResponse {
	res := MessageResponse{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		SenderID:         m.SenderID,
		Content:          m.Content,
		OriginalLanguage: m.OriginalLanguage,
		IsRead:           m.IsRead,
		CreatedAt:        m.CreatedAt,
		Attachments:      make([]AttachmentResponse, len(attachments)),
	}
	for i, a := range attachments {
		res.Attachments[i] = AttachmentResponse{ID: a.ID, FileName: a.FileName, ContentType: a.ContentType}
		if i < len(urls) {
			res.Attachments[i].URL = urls[i]
		}
	}
	return res
}

type ReportResponse struct {
	ID                int64                   `json:"id"`
	ReporterID        int64                   `json:"reporter_id"`
	ReportedUserID    *int64                  `json:"reported_user_id,omitempty"`
	ReportedProductID *int64                  `json:"reported_product_id,omitempty"`
	ReportedMessageID *int64                  `json:"reported_message_id,omitempty"`
	Type              domain.ReportType       `json:"type"`
	Description       string                  `json:"description"`
	Status            domain.ReportStatusType `json:"status"`
	ResolvedBy        *int64                  `json:"resolved_by,omitempty"`
	ResolutionNotes   string                  `json:"resolution_notes,omitempty"`
	ResolvedAt        *time.Time              `json:"resolved_at,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

func newReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ID:                r.ID,
		ReporterID:        r.ReporterID,
		ReportedUserID:    r.ReportedUserID,
		ReportedProductID: r.ReportedProductID,
		ReportedMessageID: r.ReportedMessageID,
		Type:              r.Type,
		Description:       r.Description,
		Status:            r.Status,
		ResolvedBy:        r.ResolvedBy,
		ResolutionNotes:   r.ResolutionNotes,
		ResolvedAt:        r.ResolvedAt,
		CreatedAt:         r.CreatedAt,
	}
}
