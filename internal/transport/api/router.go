package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/village-connect/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// UploadServiceTimeout запросы с загрузкой файлов в объектное хранилище.
	UploadServiceTimeout = 15 * time.Second

	// MaxRequestBody ограничение тела запроса, включая multipart загрузки.
	MaxRequestBody int64 = 10 << 20
)

const (
	RouteGroup = "/api"

	RegisterRoute             = "/user/register"
	LoginRoute                = "/user/login"
	ProfileRoute              = "/user/profile"
	ProfilePictureRoute       = "/user/profile/picture"
	BusinessVerificationRoute = "/user/business-verification"
	DashboardRoute            = "/user/dashboard"
	WalletRoute               = "/user/wallet"
	DepositRoute              = "/user/wallet/deposit"
	WithdrawRoute             = "/user/wallet/withdraw"
	TransactionsRoute         = "/user/wallet/transactions"

	CategoriesRoute    = "/categories"
	ProductsRoute      = "/products"
	ProductRoute       = "/products/:id"
	ProductImagesRoute = "/products/:id/images"

	OrdersRoute      = "/orders"
	OrderRoute       = "/orders/:id"
	OrderCancelRoute = "/orders/:id/cancel"

	TrackRoute           = "/deliveries/track/:code"
	DeliveryQRRoute      = "/deliveries/:id/qr"
	DeliveryOTPRoute     = "/deliveries/:id/otp"
	DeliveryAcceptRoute  = "/deliveries/:id/accept"
	DeliveryStatusRoute  = "/deliveries/:id/status"
	DeliveryConfirmRoute = "/deliveries/:id/confirm"

	PickupShopsRoute = "/pickup-shops"

	ConversationsRoute = "/conversations"
	ConversationRoute  = "/conversations/:id"
	MessagesRoute      = "/conversations/:id/messages"
	TranslationsRoute  = "/messages/:id/translations"

	ReportsRoute = "/reports"

	AdminGroup                     = "/admin"
	AdminCategoriesRoute           = "/categories"
	AdminReportsRoute              = "/reports"
	AdminReportStatusRoute         = "/reports/:id/status"
	AdminVerifyUserRoute           = "/users/:id/verify"
	AdminBlockUserRoute            = "/users/:id/block"
	AdminBusinessVerificationRoute = "/business-verifications/:userID"
	AdminVerifyPickupShopRoute     = "/pickup-shops/:id/verify"
	AdminAssignCourierRoute        = "/deliveries/:id/assign"
	AdminLogsRoute                 = "/logs"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	CatalogService    CatalogServicer
	OrderService      OrderServicer
	WalletService     WalletServicer
	DeliveryService   DeliveryServicer
	PickupShopService PickupShopServicer
	MessagingService  MessagingServicer
	ModerationService ModerationServicer
	JWTSecretKey      []byte
	// TrustedProxies сети прокси, которым разрешено передавать адрес клиента в X-Forwarded-For.
	// Пустой список: адресом клиента считается адрес соединения.
	TrustedProxies []string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(args.TrustedProxies); err != nil {
		return nil, fmt.Errorf("router: trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())
	r.Use(middlewares.BodyLimit(MaxRequestBody))
	r.MaxMultipartMemory = MaxRequestBody

	authHandler := NewAuthHandler(args.UserService)
	profileHandler := NewProfileHandler(args.UserService)
	walletHandler := NewWalletHandler(args.WalletService)
	catalogHandler := NewCatalogHandler(args.CatalogService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	deliveriesHandler := NewDeliveriesHandler(args.DeliveryService)
	shopsHandler := NewPickupShopsHandler(args.PickupShopService)
	messagingHandler := NewMessagingHandler(args.MessagingService)
	moderationHandler := NewModerationHandler(args.ModerationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// публичный каталог.
	api.GET(CategoriesRoute, catalogHandler.Categories)
	api.GET(ProductsRoute, catalogHandler.Search)
	api.GET(ProductRoute, catalogHandler.Detail)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(ProfileRoute, profileHandler.Show)
	api.PUT(ProfileRoute, profileHandler.Update)
	api.POST(ProfilePictureRoute, profileHandler.UploadPicture)
	api.POST(BusinessVerificationRoute, profileHandler.SubmitVerification)
	api.GET(DashboardRoute, profileHandler.Dashboard)

	api.GET(WalletRoute, walletHandler.Index)
	api.POST(DepositRoute, walletHandler.Deposit)
	api.POST(WithdrawRoute, walletHandler.Withdraw)
	api.GET(TransactionsRoute, walletHandler.Transactions)

	api.POST(ProductsRoute, catalogHandler.Create)
	api.POST(ProductImagesRoute, catalogHandler.AddImage)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)

	api.GET(TrackRoute, deliveriesHandler.Track)
	api.GET(DeliveryQRRoute, deliveriesHandler.QRCode)
	api.POST(DeliveryOTPRoute, deliveriesHandler.IssueOTP)
	api.POST(DeliveryAcceptRoute, deliveriesHandler.Accept)
	api.POST(DeliveryStatusRoute, deliveriesHandler.UpdateStatus)
	api.POST(DeliveryConfirmRoute, deliveriesHandler.Confirm)

	api.GET(PickupShopsRoute, shopsHandler.Index)
	api.POST(PickupShopsRoute, shopsHandler.Create)

	api.GET(ConversationsRoute, messagingHandler.Index)
	api.POST(ConversationsRoute, messagingHandler.Start)
	api.GET(ConversationRoute, messagingHandler.Show)
	api.POST(MessagesRoute, messagingHandler.Send)
	api.POST(TranslationsRoute, messagingHandler.Translate)

	api.POST(ReportsRoute, moderationHandler.CreateReport)

	admin := api.Group(AdminGroup, middlewares.AdminOnly())
	admin.POST(AdminCategoriesRoute, catalogHandler.CreateCategory)
	admin.GET(AdminReportsRoute, moderationHandler.Reports)
	admin.POST(AdminReportStatusRoute, moderationHandler.UpdateReportStatus)
	admin.POST(AdminVerifyUserRoute, moderationHandler.VerifyUser)
	admin.POST(AdminBlockUserRoute, moderationHandler.BlockUser)
	admin.DELETE(AdminBlockUserRoute, moderationHandler.UnblockUser)
	admin.POST(AdminBusinessVerificationRoute, moderationHandler.ReviewVerification)
	admin.POST(AdminVerifyPickupShopRoute, moderationHandler.VerifyPickupShop)
	admin.POST(AdminAssignCourierRoute, moderationHandler.AssignCourier)
	admin.GET(AdminLogsRoute, moderationHandler.AdminLogs)
	return r, nil
}
