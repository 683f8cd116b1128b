package service

import (
	"fmt"

	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService       *UserService
	CatalogService    *CatalogService
	OrderService      *OrderService
	WalletService     *WalletService
	DeliveryService   *DeliveryService
	PickupShopService *PickupShopService
	MessagingService  *MessagingService
	ModerationService *ModerationService
}

// Dependencies внешние зависимости сервисного слоя.
type Dependencies struct {
	UOW       uow.UOW
	JWTSecret []byte
	Hasher    PasswordHasher
	Storage   ObjectStorage
	OTP       OTPStore
	Cache     Cache
	Logger    *logrus.Logger
	// GatewayEnabled пополнения и выводы подтверждаются платежным шлюзом.
	GatewayEnabled bool
}

func Factory(deps Dependencies) (*AppServices, error) {
	userService, err := NewUserService(deps.UOW, deps.JWTSecret, deps.Hasher, deps.Storage)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	catalogService, err := NewCatalogService(deps.UOW, deps.Storage)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	orderService, err := NewOrderService(deps.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	walletService, err := NewWalletService(deps.UOW, deps.GatewayEnabled)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	deliveryService, err := NewDeliveryService(deps.UOW, deps.OTP, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	pickupShopService, err := NewPickupShopService(deps.UOW, deps.Cache, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	messagingService, err := NewMessagingService(deps.UOW, deps.Storage)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}
	moderationService, err := NewModerationService(deps.UOW, deps.Cache, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	return &AppServices{
		UserService:       userService,
		CatalogService:    catalogService,
		OrderService:      orderService,
		WalletService:     walletService,
		DeliveryService:   deliveryService,
		PickupShopService: pickupShopService,
		MessagingService:  messagingService,
		ModerationService: moderationService,
	}, nil
}
