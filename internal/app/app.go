package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/village-connect/internal/config"
	"github.com/fsdevblog/village-connect/internal/repository/pgrepo"
	"github.com/fsdevblog/village-connect/internal/repository/redisrepo"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/service/psswd"
	"github.com/fsdevblog/village-connect/internal/storage"
	"github.com/fsdevblog/village-connect/internal/transport/api"
	"github.com/fsdevblog/village-connect/internal/transport/payments"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 2 * time.Minute
	paymentsPerBatch  = 50
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает зависимости и HTTP сервер и работает до SIGINT/SIGTERM. После сигнала возвращает context.Canceled.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.RegisterRepositories(unitOfWork); regErr != nil {
		return fmt.Errorf("app run: %w", regErr)
	}

	redisClient, redisErr := redisrepo.Connect(notifyCtx, redisrepo.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	if redisErr != nil {
		return fmt.Errorf("app run: %w", redisErr)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			a.Logger.WithError(err).Error("close redis client")
		}
	}()

	objectStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %w", storageErr)
	}

	gatewayEnabled := a.Config.PaymentGatewayAddress != ""
	services, sErr := service.Factory(service.Dependencies{
		UOW:            unitOfWork,
		JWTSecret:      []byte(a.Config.JWTUserSecret),
		Hasher:         psswd.PasswordHash(""),
		Storage:        objectStorage,
		OTP:            redisrepo.NewOTPStore(redisClient, a.Config.OTPTTL),
		Cache:          redisrepo.NewCache(redisClient, a.Config.PickupShopCacheTTL),
		Logger:         a.Logger,
		GatewayEnabled: gatewayEnabled,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		CatalogService:    services.CatalogService,
		OrderService:      services.OrderService,
		WalletService:     services.WalletService,
		DeliveryService:   services.DeliveryService,
		PickupShopService: services.PickupShopService,
		MessagingService:  services.MessagingService,
		ModerationService: services.ModerationService,
		JWTSecretKey:      []byte(a.Config.JWTUserSecret),
		TrustedProxies:    a.Config.TrustedProxies,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	if gatewayEnabled {
		processor := payments.New(services.WalletService, a.Config.PaymentGatewayAddress, a.Logger).
			SetWorkers(a.Config.PaymentWorkers).
			SetLimitPerIteration(paymentsPerBatch)
		go processor.Run(notifyCtx)
	} else {
		a.Logger.Warn("payment gateway address is not set, deposits and withdrawals complete immediately")
	}

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return fmt.Errorf("app run: %w", err)
	}
}

func (a *App) initStorage(ctx context.Context) (*storage.S3ObjectStorage, error) {
	objectStorage, err := storage.NewS3ObjectStorage(ctx, storage.Config{
		Endpoint:     a.Config.S3Endpoint,
		Region:       a.Config.S3Region,
		Bucket:       a.Config.S3Bucket,
		AccessKey:    a.Config.S3AccessKey,
		SecretKey:    a.Config.S3SecretKey,
		UsePathStyle: a.Config.S3UsePathStyle,
	}, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	if bucketErr := objectStorage.EnsureBucket(ctx); bucketErr != nil {
		return nil, fmt.Errorf("init storage: %w", bucketErr)
	}
	return objectStorage, nil
}
