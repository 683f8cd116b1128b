package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/shopspring/decimal"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	Profile(ctx context.Context, userID int64) (*service.ProfileView, error)
	UpdateProfile(ctx context.Context, args service.UpdateProfileArgs) (*service.ProfileView, error)
	UploadProfilePicture(ctx context.Context, userID int64, file service.FileUpload) (*service.ProfileView, error)
	SubmitBusinessVerification(
		ctx context.Context,
		args service.SubmitVerificationArgs,
	) (*domain.BusinessVerification, error)
	Dashboard(ctx context.Context, userID int64) (*service.Dashboard, error)
}

type CatalogServicer interface {
	CreateCategory(ctx context.Context, actor service.Actor, args service.CreateCategoryArgs) (*domain.Category, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, args service.CreateProductArgs) (*domain.Product, error)
	AddProductImage(
		ctx context.Context,
		actor service.Actor,
		productID int64,
		file service.FileUpload,
	) (*service.ImageView, error)
	Search(ctx context.Context, args service.SearchProductsArgs) ([]domain.Product, error)
	ProductDetail(ctx context.Context, id int64) (*service.ProductDetail, error)
}

type OrderServicer interface {
	Place(ctx context.Context, args service.PlaceOrderArgs) (*service.PlacedOrder, error)
	Cancel(ctx context.Context, actor service.Actor, orderID int64) (*domain.Order, error)
	BuyerOrders(ctx context.Context, buyerID int64) ([]domain.Order, error)
	Get(ctx context.Context, actor service.Actor, orderID int64) (*service.OrderDetail, error)
}

type WalletServicer interface {
	Wallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	Transactions(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)
}

type DeliveryServicer interface {
	Track(ctx context.Context, actor service.Actor, code string) (*service.TrackingView, error)
	QRCode(ctx context.Context, actor service.Actor, deliveryID int64) ([]byte, error)
	IssueOTP(ctx context.Context, actor service.Actor, deliveryID int64) (string, error)
	Accept(ctx context.Context, actor service.Actor, deliveryID int64) (*domain.Delivery, error)
	UpdateStatus(
		ctx context.Context,
		actor service.Actor,
		args service.UpdateDeliveryStatusArgs,
	) (*domain.Delivery, error)
	Confirm(
		ctx context.Context,
		actor service.Actor,
		args service.ConfirmDeliveryArgs,
	) (*service.ConfirmResult, error)
}

type PickupShopServicer interface {
	Register(
		ctx context.Context,
		actor service.Actor,
		args service.RegisterPickupShopArgs,
	) (*domain.PickupShop, error)
	List(ctx context.Context, filter repoargs.PickupShopFilter) ([]domain.PickupShop, error)
}

type MessagingServicer interface {
	Conversations(ctx context.Context, userID int64) ([]repoargs.ConversationSummary, error)
	StartWithUser(ctx context.Context, actor service.Actor, otherID int64) (*domain.Conversation, error)
	StartAboutOrder(ctx context.Context, actor service.Actor, orderID int64) (*domain.Conversation, error)
	Open(
		ctx context.Context,
		actor service.Actor,
		conversationID int64,
		lang domain.Language,
	) (*service.ConversationView, error)
	Send(ctx context.Context, actor service.Actor, args service.SendMessageArgs) (*service.SentMessage, error)
	Translate(
		ctx context.Context,
		actor service.Actor,
		messageID int64,
		language, content string,
	) (*domain.MessageTranslation, error)
}

type ModerationServicer interface {
	CreateReport(ctx context.Context, actor service.Actor, args service.CreateReportArgs) (*domain.Report, error)
	Reports(
		ctx context.Context,
		actor service.Actor,
		status domain.ReportStatusType,
		page repoargs.Page,
	) ([]domain.Report, error)
	UpdateReportStatus(
		ctx context.Context,
		actor service.Actor,
		reportID int64,
		status domain.ReportStatusType,
		notes string,
	) (*domain.Report, error)
	VerifyUser(ctx context.Context, actor service.Actor, userID int64) (*domain.User, error)
	BlockUser(ctx context.Context, actor service.Actor, args service.BlockUserArgs) (*domain.BlockedUser, error)
	UnblockUser(ctx context.Context, actor service.Actor, userID int64) error
	ReviewBusinessVerification(
		ctx context.Context,
		actor service.Actor,
		userID int64,
		approved bool,
		notes string,
	) (*domain.BusinessVerification, error)
	VerifyPickupShop(ctx context.Context, actor service.Actor, shopID int64) (*domain.PickupShop, error)
	AssignCourier(ctx context.Context, actor service.Actor, deliveryID, courierID int64) (*domain.Delivery, error)
	AdminLogs(ctx context.Context, actor service.Actor, page repoargs.Page) ([]domain.AdminLog, error)
}
