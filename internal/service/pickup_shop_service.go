package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// pickupShopsCachePrefix префикс ключей кэша списка пунктов выдачи.
const pickupShopsCachePrefix = "pickup_shops:"

type PickupShopService struct {
	uow   uow.UOW
	repo  PickupShopRepository
	cache Cache
	log   *logrus.Entry
}

func NewPickupShopService(u uow.UOW, cache Cache, logger *logrus.Logger) (*PickupShopService, error) {
	repo, err := repoFromUOW[PickupShopRepository](u, repoargs.PickupShopRepoName)
	if err != nil {
		return nil, err
	}
	return &PickupShopService{
		uow:   u,
		repo:  repo,
		cache: cache,
		log:   logger.WithField("component", "pickup_shop_service"),
	}, nil
}

type RegisterPickupShopArgs struct {
	Name           string
	Address        string
	State          string
	LGA            string
	Community      string
	PhoneNumber    string
	CommissionRate *decimal.Decimal
}

// Register регистрирует непроверенный пункт выдачи. Регистрировать пункты могут только владельцы магазинов.
func (p *PickupShopService) Register(
	ctx context.Context,
	actor Actor,
	args RegisterPickupShopArgs,
) (*domain.PickupShop, error) {
	if actor.Role != domain.UserTypeShopOwner {
		return nil, fmt.Errorf("registering pickup shop: %w", domain.ErrForbidden)
	}
	if strings.TrimSpace(args.Name) == "" {
		return nil, fmt.Errorf("registering pickup shop: %w", domain.NewValidationError("name", "required"))
	}
	if strings.TrimSpace(args.Address) == "" {
		return nil, fmt.Errorf("registering pickup shop: %w", domain.NewValidationError("address", "required"))
	}
	rate := domain.DefaultCommissionRate
	if args.CommissionRate != nil {
		rate = *args.CommissionRate
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) { //nolint:mnd
		return nil, fmt.Errorf("registering pickup shop: %w",
			domain.NewValidationError("commission_rate", "must be between 0 and 100"))
	}

	shop, err := p.repo.Create(ctx, repoargs.CreatePickupShop{
		OwnerID:        actor.UserID,
		Name:           args.Name,
		Address:        args.Address,
		State:          args.State,
		LGA:            args.LGA,
		Community:      args.Community,
		PhoneNumber:    args.PhoneNumber,
		CommissionRate: rate,
	})
	if err != nil {
		return nil, fmt.Errorf("registering pickup shop: %w", err)
	}
	p.invalidate(ctx)
	return shop, nil
}

// List проверенные пункты выдачи с фильтром по местоположению. Результат кэшируется.
func (p *PickupShopService) List(ctx context.Context, filter repoargs.PickupShopFilter) ([]domain.PickupShop, error) {
	key := pickupShopsCacheKey(filter)

	var shops []domain.PickupShop
	err := p.cache.Get(ctx, key, &shops)
	switch {
	case err == nil:
		return shops, nil
	case !errors.Is(err, domain.ErrRecordNotFound):
		p.log.WithError(err).Warn("pickup shops cache read failed")
	}

	if shops, err = p.repo.ListVerified(ctx, filter); err != nil {
		return nil, fmt.Errorf("listing pickup shops: %w", err)
	}
	if err = p.cache.Set(ctx, key, shops); err != nil {
		p.log.WithError(err).Warn("pickup shops cache write failed")
	}
	return shops, nil
}

// invalidate сбрасывает кэш списков. Ошибка кэша не должна ломать основную операцию, поэтому только логируется.
func (p *PickupShopService) invalidate(ctx context.Context) {
	if err := p.cache.DeleteByPrefix(ctx, pickupShopsCachePrefix); err != nil {
		p.log.WithError(err).Warn("pickup shops cache invalidation failed")
	}
}

func pickupShopsCacheKey(filter repoargs.PickupShopFilter) string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(filter.State)),
		strings.ToLower(strings.TrimSpace(filter.LGA)),
		strings.ToLower(strings.TrimSpace(filter.Community)),
	}
	return pickupShopsCachePrefix + strings.Join(parts, "|")
}
