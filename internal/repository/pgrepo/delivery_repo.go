package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const deliveryColumns = `id, order_id, courier_id, pickup_shop_id, status, tracking_code, qr_code, estimated_date,
	actual_delivery_date, notes`

type DeliveryRepository struct {
	conn uow.DBTX
}

func NewDeliveryRepository(conn uow.DBTX) *DeliveryRepository {
	return &DeliveryRepository{conn: conn}
}

func (d *DeliveryRepository) CreateDelivery(ctx context.Context, args repoargs.CreateDelivery) (*domain.Delivery, error) {
	row := d.conn.QueryRow(ctx, `INSERT INTO deliveries
		(order_id, pickup_shop_id, tracking_code, qr_code, estimated_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+deliveryColumns,
		args.OrderID, args.PickupShopID, args.TrackingCode, args.QRCode, args.EstimatedDate, args.Notes,
	)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "creating delivery for order %d", args.OrderID)
	}
	return delivery, nil
}

func (d *DeliveryRepository) FindByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	return d.findOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, "finding delivery %d", id)
}

// LockByID возвращает доставку, блокируя строку до конца транзакции.
func (d *DeliveryRepository) LockByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	return d.findOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1 FOR UPDATE`,
		"locking delivery %d", id)
}

func (d *DeliveryRepository) FindByOrderID(ctx context.Context, orderID int64) (*domain.Delivery, error) {
	return d.findOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1`,
		"finding delivery of order %d", orderID)
}

func (d *DeliveryRepository) FindByTrackingCode(ctx context.Context, code string) (*domain.Delivery, error) {
	row := d.conn.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE tracking_code = $1`, code)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, convertErr(err, "finding delivery by tracking code %s", code)
	}
	return delivery, nil
}

func (d *DeliveryRepository) findOne(ctx context.Context, query string, format string, id int64) (*domain.Delivery, error) {
	delivery, err := scanDelivery(d.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, format, id)
	}
	return delivery, nil
}

// UpdateStatus переводит доставку из статуса From в To. Если текущий статус уже не From,
// возвращает domain.ErrInvalidStatusTransition.
func (d *DeliveryRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateDeliveryStatus) (*domain.Delivery, error) {
	row := d.conn.QueryRow(ctx, `UPDATE deliveries
		SET status = $3, actual_delivery_date = COALESCE($4, actual_delivery_date)
		WHERE id = $1 AND status = $2 RETURNING `+deliveryColumns,
		args.ID, args.From, args.To, args.ActualDeliveryDate,
	)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrInvalidStatusTransition, "updating status of delivery %d", args.ID)
	}
	return delivery, nil
}

// AssignCourier назначает курьера. При onlyUnassigned назначение пройдет только для
// неназначенной доставки в статусе pending, иначе вернется domain.ErrInvalidStatusTransition.
func (d *DeliveryRepository) AssignCourier(
	ctx context.Context,
	id, courierID int64,
	onlyUnassigned bool,
) (*domain.Delivery, error) {
	row := d.conn.QueryRow(ctx, `UPDATE deliveries SET courier_id = $2
		WHERE id = $1 AND status IN ('pending', 'in_transit', 'at_pickup_shop')
			AND (NOT $3 OR (courier_id IS NULL AND status = 'pending'))
		RETURNING `+deliveryColumns, id, courierID, onlyUnassigned)
	delivery, err := scanDelivery(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrInvalidStatusTransition, "assigning courier to delivery %d", id)
	}
	return delivery, nil
}

// CreateConfirmation сохраняет подтверждение доставки. Повторное подтверждение дает domain.ErrDuplicateKey.
func (d *DeliveryRepository) CreateConfirmation(
	ctx context.Context,
	args repoargs.CreateConfirmation,
) (*domain.DeliveryConfirmation, error) {
	var c domain.DeliveryConfirmation
	err := d.conn.QueryRow(ctx, `INSERT INTO delivery_confirmations (delivery_id, confirmed_by, method, notes)
		VALUES ($1, $2, $3, $4) RETURNING id, delivery_id, confirmed_by, confirmed_at, method, notes`,
		args.DeliveryID, args.ConfirmedBy, args.Method, args.Notes,
	).Scan(&c.ID, &c.DeliveryID, &c.ConfirmedBy, &c.ConfirmedAt, &c.Method, &c.Notes)
	if err != nil {
		return nil, convertErr(err, "confirming delivery %d", args.DeliveryID)
	}
	return &c, nil
}

func (d *DeliveryRepository) FindConfirmation(ctx context.Context, deliveryID int64) (*domain.DeliveryConfirmation, error) {
	var c domain.DeliveryConfirmation
	err := d.conn.QueryRow(ctx, `SELECT id, delivery_id, confirmed_by, confirmed_at, method, notes
		FROM delivery_confirmations WHERE delivery_id = $1`, deliveryID,
	).Scan(&c.ID, &c.DeliveryID, &c.ConfirmedBy, &c.ConfirmedAt, &c.Method, &c.Notes)
	if err != nil {
		return nil, convertErr(err, "finding confirmation of delivery %d", deliveryID)
	}
	return &c, nil
}

func (d *DeliveryRepository) AddTracking(ctx context.Context, args repoargs.AddTracking) (*domain.DeliveryTracking, error) {
	row := d.conn.QueryRow(ctx, `INSERT INTO delivery_tracking
		(delivery_id, status, location, latitude, longitude, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, delivery_id, status, location, latitude, longitude, notes, created_at`,
		args.DeliveryID, args.Status, args.Location, args.Latitude, args.Longitude, args.Notes,
	)
	t, err := scanTracking(row)
	if err != nil {
		return nil, convertErr(err, "adding tracking to delivery %d", args.DeliveryID)
	}
	return t, nil
}

// Tracking история доставки в хронологическом порядке.
func (d *DeliveryRepository) Tracking(ctx context.Context, deliveryID int64) ([]domain.DeliveryTracking, error) {
	rows, err := d.conn.Query(ctx, `SELECT id, delivery_id, status, location, latitude, longitude, notes, created_at
		FROM delivery_tracking WHERE delivery_id = $1 ORDER BY created_at, id`, deliveryID)
	if err != nil {
		return nil, convertErr(err, "tracking of delivery %d", deliveryID)
	}
	history, err := collect(rows, scanTracking)
	if err != nil {
		return nil, convertErr(err, "tracking of delivery %d", deliveryID)
	}
	return history, nil
}

func scanDelivery(row scanner) (*domain.Delivery, error) {
	var d domain.Delivery
	if err := row.Scan(
		&d.ID,
		&d.OrderID,
		&d.CourierID,
		&d.PickupShopID,
		&d.Status,
		&d.TrackingCode,
		&d.QRCode,
		&d.EstimatedDate,
		&d.ActualDeliveryDate,
		&d.Notes,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &d, nil
}

func scanTracking(row scanner) (*domain.DeliveryTracking, error) {
	var t domain.DeliveryTracking
	if err := row.Scan(
		&t.ID, &t.DeliveryID, &t.Status, &t.Location, &t.Latitude, &t.Longitude, &t.Notes, &t.CreatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
