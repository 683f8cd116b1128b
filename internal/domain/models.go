package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	Email             string
	PhoneNumber       *string
	UserType          UserType
	IsVerified        bool
	PreferredLanguage Language
}

// IsAdmin сокращение для проверки роли администратора.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

type Profile struct {
	UserID      int64
	PictureKey  *string
	State       string
	LGA         string
	Community   string
	Bio         string
	DateOfBirth *time.Time
	UpdatedAt   time.Time
}

type BusinessVerification struct {
	UserID         int64
	CertificateKey *string
	RCNumber       string
	TIN            string
	Status         VerificationStatusType
	Notes          string
	SubmittedAt    time.Time
	VerifiedAt     *time.Time
}

type Category struct {
	ID          int64
	Name        string
	Description string
	ParentID    *int64
}

type Product struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	SellerID          int64
	CategoryID        *int64
	Name              string
	Description       string
	Price             decimal.Decimal
	QuantityAvailable int64
	Location          string
	IsActive          bool
}

type ProductImage struct {
	ID        int64
	ProductID int64
	ObjectKey string
	IsPrimary bool
}

type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	BuyerID         int64
	SellerID        int64
	Status          OrderStatusType
	ShippingAddress string
	TotalAmount     decimal.Decimal
	Notes           string
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	// Price цена товара на момент покупки.
	Price decimal.Decimal
}

type Wallet struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Balance   decimal.Decimal
	IsActive  bool
}

type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	WalletID    int64
	Direction   DirectionType
	Amount      decimal.Decimal
	Type        TransactionType
	Status      TransactionStatusType
	Reference   string
	Description string
	OrderID     *int64
}

type Escrow struct {
	ID         int64
	OrderID    int64
	Amount     decimal.Decimal
	BuyerID    int64
	SellerID   int64
	CreatedAt  time.Time
	IsReleased bool
	ReleasedAt *time.Time
	RefundedAt *time.Time
}

// IsSettled эскроу уже выплачен продавцу или возвращен покупателю.
func (e *Escrow) IsSettled() bool {
	return e.IsReleased || e.RefundedAt != nil
}

type PickupShop struct {
	ID             int64
	CreatedAt      time.Time
	OwnerID        int64
	Name           string
	Address        string
	State          string
	LGA            string
	Community      string
	PhoneNumber    string
	IsVerified     bool
	CommissionRate decimal.Decimal
}

type Delivery struct {
	ID                 int64
	OrderID            int64
	CourierID          *int64
	PickupShopID       *int64
	Status             DeliveryStatusType
	TrackingCode       string
	QRCode             string
	EstimatedDate      *time.Time
	ActualDeliveryDate *time.Time
	Notes              string
}

type DeliveryConfirmation struct {
	ID          int64
	DeliveryID  int64
	ConfirmedBy int64
	ConfirmedAt time.Time
	Method      ConfirmationMethodType
	Notes       string
}

type DeliveryTracking struct {
	ID         int64
	DeliveryID int64
	Status     DeliveryStatusType
	Location   string
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	Notes      string
	CreatedAt  time.Time
}

type Conversation struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OrderID        *int64
	ParticipantIDs []int64
}

type Message struct {
	ID               int64
	ConversationID   int64
	SenderID         int64
	Content          string
	CreatedAt        time.Time
	IsRead           bool
	OriginalLanguage Language
}

type MessageAttachment struct {
	ID          int64
	MessageID   int64
	ObjectKey   string
	FileName    string
	ContentType string
}

type MessageTranslation struct {
	MessageID         int64
	Language          Language
	TranslatedContent string
}

type Report struct {
	ID                int64
	CreatedAt         time.Time
	ReporterID        int64
	ReportedUserID    *int64
	ReportedProductID *int64
	ReportedMessageID *int64
	Type              ReportType
	Description       string
	Status            ReportStatusType
	ResolvedBy        *int64
	ResolutionNotes   string
	ResolvedAt        *time.Time
}

type AdminLog struct {
	ID            int64
	AdminID       int64
	Action        string
	ModelAffected string
	ObjectID      *int64
	Timestamp     time.Time
	IPAddress     string
	Details       string
}

type BlockedUser struct {
	UserID      int64
	BlockedAt   time.Time
	BlockedBy   *int64
	Reason      string
	IsPermanent bool
	UnblockDate *time.Time
}

// IsActiveAt проверяет, действует ли блокировка на момент now.
func (b *BlockedUser) IsActiveAt(now time.Time) bool {
	if b.IsPermanent || b.UnblockDate == nil {
		return true
	}
	return now.Before(*b.UnblockDate)
}
