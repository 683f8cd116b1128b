package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	orderColumns  = `id, created_at, updated_at, buyer_id, seller_id, status, shipping_address, total_amount, notes`
	escrowColumns = `id, order_id, amount, buyer_id, seller_id, created_at, is_released, released_at, refunded_at`
)

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `INSERT INTO orders
		(buyer_id, seller_id, status, shipping_address, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+orderColumns,
		args.BuyerID, args.SellerID, args.Status, args.ShippingAddress, args.TotalAmount, args.Notes,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order")
	}
	return order, nil
}

// CreateItems пакетно создает позиции заказа. Возвращает первую возникшую ошибку.
func (o *OrderRepository) CreateItems(
	ctx context.Context,
	orderID int64,
	items []repoargs.CreateOrderItem,
) ([]domain.OrderItem, error) {
	batch := new(pgx.Batch)
	for _, item := range items {
		batch.Queue(`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)
			RETURNING id, order_id, product_id, quantity, price`,
			orderID, item.ProductID, item.Quantity, item.Price)
	}
	br := o.conn.SendBatch(ctx, batch)
	defer br.Close()

	var res = make([]domain.OrderItem, len(items))
	for i := range items {
		it, err := scanOrderItem(br.QueryRow())
		if err != nil {
			return nil, convertErr(err, "creating items of order %d", orderID)
		}
		res[i] = *it
	}
	return res, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order %d", id)
	}
	return order, nil
}

// GetByBuyerID возвращает заказы покупателя, отсортированные по дате создания по убыванию.
func (o *OrderRepository) GetByBuyerID(ctx context.Context, buyerID int64, limit uint) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE buyer_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, buyerID, limit)
	if err != nil {
		return nil, convertErr(err, "orders of buyer %d", buyerID)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, convertErr(err, "orders of buyer %d", buyerID)
	}
	return orders, nil
}

func (o *OrderRepository) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := o.conn.Query(ctx, `SELECT id, order_id, product_id, quantity, price FROM order_items
		WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, convertErr(err, "items of order %d", orderID)
	}
	items, err := collect(rows, scanOrderItem)
	if err != nil {
		return nil, convertErr(err, "items of order %d", orderID)
	}
	return items, nil
}

func (o *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) error {
	tag, err := o.conn.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return convertErr(err, "updating status of order %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of order %d", id)
	}
	return nil
}

func (o *OrderRepository) CreateEscrow(ctx context.Context, args repoargs.CreateEscrow) (*domain.Escrow, error) {
	row := o.conn.QueryRow(ctx, `INSERT INTO escrows (order_id, amount, buyer_id, seller_id)
		VALUES ($1, $2, $3, $4) RETURNING `+escrowColumns, args.OrderID, args.Amount, args.BuyerID, args.SellerID)
	escrow, err := scanEscrow(row)
	if err != nil {
		return nil, convertErr(err, "creating escrow for order %d", args.OrderID)
	}
	return escrow, nil
}

// LockEscrowByOrderID возвращает эскроу заказа, блокируя строку до конца транзакции.
func (o *OrderRepository) LockEscrowByOrderID(ctx context.Context, orderID int64) (*domain.Escrow, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+escrowColumns+` FROM escrows WHERE order_id = $1 FOR UPDATE`, orderID)
	escrow, err := scanEscrow(row)
	if err != nil {
		return nil, convertErr(err, "locking escrow of order %d", orderID)
	}
	return escrow, nil
}

// ReleaseEscrow отмечает эскроу выплаченным. Повторная выплата или выплата возвращенного эскроу
// дает domain.ErrEscrowSettled.
func (o *OrderRepository) ReleaseEscrow(ctx context.Context, id int64) (*domain.Escrow, error) {
	row := o.conn.QueryRow(ctx, `UPDATE escrows SET is_released = true, released_at = now()
		WHERE id = $1 AND NOT is_released AND refunded_at IS NULL RETURNING `+escrowColumns, id)
	escrow, err := scanEscrow(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrEscrowSettled, "releasing escrow %d", id)
	}
	return escrow, nil
}

// RefundEscrow отмечает эскроу возвращенным покупателю.
func (o *OrderRepository) RefundEscrow(ctx context.Context, id int64) (*domain.Escrow, error) {
	row := o.conn.QueryRow(ctx, `UPDATE escrows SET refunded_at = now()
		WHERE id = $1 AND NOT is_released AND refunded_at IS NULL RETURNING `+escrowColumns, id)
	escrow, err := scanEscrow(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrEscrowSettled, "refunding escrow %d", id)
	}
	return escrow, nil
}

func scanOrder(row scanner) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.BuyerID,
		&o.SellerID,
		&o.Status,
		&o.ShippingAddress,
		&o.TotalAmount,
		&o.Notes,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}

func scanOrderItem(row scanner) (*domain.OrderItem, error) {
	var it domain.OrderItem
	if err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &it, nil
}

func scanEscrow(row scanner) (*domain.Escrow, error) {
	var e domain.Escrow
	if err := row.Scan(
		&e.ID, &e.OrderID, &e.Amount, &e.BuyerID, &e.SellerID, &e.CreatedAt, &e.IsReleased, &e.ReleasedAt, &e.RefundedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
