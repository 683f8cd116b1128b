package service

import (
	"context"
	"io"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*domain.User, error)
	CreateProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, args repoargs.UpdateProfile) (*domain.Profile, error)
	SetProfilePicture(ctx context.Context, userID int64, key string) (*domain.Profile, error)
	UpsertBusinessVerification(
		ctx context.Context,
		args repoargs.UpsertBusinessVerification,
	) (*domain.BusinessVerification, error)
	GetBusinessVerification(ctx context.Context, userID int64) (*domain.BusinessVerification, error)
	ReviewBusinessVerification(
		ctx context.Context,
		args repoargs.ReviewBusinessVerification,
	) (*domain.BusinessVerification, error)
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, args repoargs.CreateCategory) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)
	LockProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
	ChangeStock(ctx context.Context, change repoargs.StockChange) error
	SearchProducts(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error)
	RelatedProducts(ctx context.Context, product *domain.Product, limit uint) ([]domain.Product, error)
	ProductsBySeller(ctx context.Context, sellerID int64, limit uint) ([]domain.Product, error)
	AddProductImage(ctx context.Context, args repoargs.AddProductImage) (*domain.ProductImage, error)
	ProductImages(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	CreateItems(ctx context.Context, orderID int64, items []repoargs.CreateOrderItem) ([]domain.OrderItem, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByBuyerID(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error)
	Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) error
	CreateEscrow(ctx context.Context, args repoargs.CreateEscrow) (*domain.Escrow, error)
	LockEscrowByOrderID(ctx context.Context, orderID int64) (*domain.Escrow, error)
	ReleaseEscrow(ctx context.Context, id int64) (*domain.Escrow, error)
	RefundEscrow(ctx context.Context, id int64) (*domain.Escrow, error)
}

type WalletRepository interface {
	CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	FindByID(ctx context.Context, id int64) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, walletID int64, delta decimal.Decimal) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	Transactions(ctx context.Context, walletID int64, limit uint) ([]domain.Transaction, error)
	LockTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	UpdateTransactionStatus(
		ctx context.Context,
		id int64,
		from, to domain.TransactionStatusType,
	) (*domain.Transaction, error)
	PendingGatewayTransactions(ctx context.Context, afterID int64, limit uint) ([]domain.Transaction, error)
}

type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, args repoargs.CreateDelivery) (*domain.Delivery, error)
	FindByID(ctx context.Context, id int64) (*domain.Delivery, error)
	LockByID(ctx context.Context, id int64) (*domain.Delivery, error)
	FindByOrderID(ctx context.Context, orderID int64) (*domain.Delivery, error)
	FindByTrackingCode(ctx context.Context, code string) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateDeliveryStatus) (*domain.Delivery, error)
	AssignCourier(ctx context.Context, id, courierID int64, onlyUnassigned bool) (*domain.Delivery, error)
	CreateConfirmation(ctx context.Context, args repoargs.CreateConfirmation) (*domain.DeliveryConfirmation, error)
	FindConfirmation(ctx context.Context, deliveryID int64) (*domain.DeliveryConfirmation, error)
	AddTracking(ctx context.Context, args repoargs.AddTracking) (*domain.DeliveryTracking, error)
	Tracking(ctx context.Context, deliveryID int64) ([]domain.DeliveryTracking, error)
}

type PickupShopRepository interface {
	Create(ctx context.Context, args repoargs.CreatePickupShop) (*domain.PickupShop, error)
	FindByID(ctx context.Context, id int64) (*domain.PickupShop, error)
	ListVerified(ctx context.Context, filter repoargs.PickupShopFilter) ([]domain.PickupShop, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*domain.PickupShop, error)
}

type MessagingRepository interface {
	CreateConversation(ctx context.Context, orderID *int64, participantIDs []int64) (*domain.Conversation, error)
	FindConversationByID(ctx context.Context, id int64) (*domain.Conversation, error)
	FindDirectConversation(ctx context.Context, userA, userB int64) (*domain.Conversation, error)
	LockDirectConversation(ctx context.Context, userA, userB int64) error
	FindOrderConversation(ctx context.Context, orderID int64) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]repoargs.ConversationSummary, error)
	MarkRead(ctx context.Context, conversationID, readerID int64) error
	Messages(ctx context.Context, conversationID int64, lang domain.Language) ([]repoargs.MessageView, error)
	CreateMessage(ctx context.Context, args repoargs.CreateMessage) (*domain.Message, error)
	FindMessageByID(ctx context.Context, id int64) (*domain.Message, error)
	AddAttachment(ctx context.Context, args repoargs.AddAttachment) (*domain.MessageAttachment, error)
	UpsertTranslation(ctx context.Context, t domain.MessageTranslation) (*domain.MessageTranslation, error)
}

type ModerationRepository interface {
	CreateReport(ctx context.Context, args repoargs.CreateReport) (*domain.Report, error)
	FindReportByID(ctx context.Context, id int64) (*domain.Report, error)
	ListReports(ctx context.Context, status domain.ReportStatusType, page repoargs.Page) ([]domain.Report, error)
	UpdateReportStatus(ctx context.Context, args repoargs.UpdateReportStatus) (*domain.Report, error)
	CreateAdminLog(ctx context.Context, args repoargs.CreateAdminLog) (*domain.AdminLog, error)
	ListAdminLogs(ctx context.Context, page repoargs.Page) ([]domain.AdminLog, error)
	BlockUser(ctx context.Context, args repoargs.BlockUser) (*domain.BlockedUser, error)
	UnblockUser(ctx context.Context, userID int64) error
	FindBlock(ctx context.Context, userID int64) (*domain.BlockedUser, error)
}

// OTPStore одноразовые коды подтверждения доставки. Check только сверяет код,
// Consume гасит его после того, как подтверждение зафиксировано.
type OTPStore interface {
	Save(ctx context.Context, deliveryID int64, code string) error
	Check(ctx context.Context, deliveryID int64, code string) error
	Consume(ctx context.Context, deliveryID int64, code string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignGet(ctx context.Context, key string) (string, error)
}
