package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const pickupShopColumns = `id, created_at, owner_id, name, address, state, lga, community, phone_number,
	is_verified, commission_rate`

type PickupShopRepository struct {
	conn uow.DBTX
}

func NewPickupShopRepository(conn uow.DBTX) *PickupShopRepository {
	return &PickupShopRepository{conn: conn}
}

func (p *PickupShopRepository) Create(ctx context.Context, args repoargs.CreatePickupShop) (*domain.PickupShop, error) {
	row := p.conn.QueryRow(ctx, `INSERT INTO pickup_shops
		(owner_id, name, address, state, lga, community, phone_number, commission_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+pickupShopColumns,
		args.OwnerID, args.Name, args.Address, args.State, args.LGA, args.Community, args.PhoneNumber,
		args.CommissionRate,
	)
	shop, err := scanPickupShop(row)
	if err != nil {
		return nil, convertErr(err, "creating pickup shop")
	}
	return shop, nil
}

func (p *PickupShopRepository) FindByID(ctx context.Context, id int64) (*domain.PickupShop, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+pickupShopColumns+` FROM pickup_shops WHERE id = $1`, id)
	shop, err := scanPickupShop(row)
	if err != nil {
		return nil, convertErr(err, "finding pickup shop %d", id)
	}
	return shop, nil
}

// ListVerified верифицированные пункты выдачи. Фильтры сравниваются как подстроки без учета регистра.
func (p *PickupShopRepository) ListVerified(
	ctx context.Context,
	filter repoargs.PickupShopFilter,
) ([]domain.PickupShop, error) {
	var (
		where = []string{"is_verified"}
		args  []any
	)
	for column, value := range map[string]string{
		"state":     filter.State,
		"lga":       filter.LGA,
		"community": filter.Community,
	} {
		if v := strings.TrimSpace(value); v != "" {
			args = append(args, "%"+escapeLike(v)+"%")
			where = append(where, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
		}
	}
	rows, err := p.conn.Query(ctx, `SELECT `+pickupShopColumns+` FROM pickup_shops
		WHERE `+strings.Join(where, " AND ")+` ORDER BY name, id`, args...)
	if err != nil {
		return nil, convertErr(err, "listing pickup shops")
	}
	shops, err := collect(rows, scanPickupShop)
	if err != nil {
		return nil, convertErr(err, "listing pickup shops")
	}
	return shops, nil
}

func (p *PickupShopRepository) SetVerified(ctx context.Context, id int64, verified bool) (*domain.PickupShop, error) {
	row := p.conn.QueryRow(ctx, `UPDATE pickup_shops SET is_verified = $2 WHERE id = $1 RETURNING `+pickupShopColumns,
		id, verified)
	shop, err := scanPickupShop(row)
	if err != nil {
		return nil, convertErr(err, "verifying pickup shop %d", id)
	}
	return shop, nil
}

func scanPickupShop(row scanner) (*domain.PickupShop, error) {
	var s domain.PickupShop
	if err := row.Scan(
		&s.ID,
		&s.CreatedAt,
		&s.OwnerID,
		&s.Name,
		&s.Address,
		&s.State,
		&s.LGA,
		&s.Community,
		&s.PhoneNumber,
		&s.IsVerified,
		&s.CommissionRate,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &s, nil
}
