package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

// RegisterRepositories регистрирует фабрики всех репозиториев в unit of work.
func RegisterRepositories(u uow.UOW) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:       func(conn uow.DBTX) uow.Repository { return NewUserRepository(conn) },
		repoargs.CatalogRepoName:    func(conn uow.DBTX) uow.Repository { return NewCatalogRepository(conn) },
		repoargs.OrderRepoName:      func(conn uow.DBTX) uow.Repository { return NewOrderRepository(conn) },
		repoargs.WalletRepoName:     func(conn uow.DBTX) uow.Repository { return NewWalletRepository(conn) },
		repoargs.DeliveryRepoName:   func(conn uow.DBTX) uow.Repository { return NewDeliveryRepository(conn) },
		repoargs.PickupShopRepoName: func(conn uow.DBTX) uow.Repository { return NewPickupShopRepository(conn) },
		repoargs.MessagingRepoName:  func(conn uow.DBTX) uow.Repository { return NewMessagingRepository(conn) },
		repoargs.ModerationRepoName: func(conn uow.DBTX) uow.Repository { return NewModerationRepository(conn) },
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("registering repositories: %w", err)
		}
	}
	return nil
}
