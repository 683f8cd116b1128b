package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

type DeliveryService struct {
	uow            uow.UOW
	deliveryRepo   DeliveryRepository
	orderRepo      OrderRepository
	pickupShopRepo PickupShopRepository
	otp            OTPStore
	log            *logrus.Entry
}

func NewDeliveryService(u uow.UOW, otp OTPStore, logger *logrus.Logger) (*DeliveryService, error) {
	deliveryRepo, err := repoFromUOW[DeliveryRepository](u, repoargs.DeliveryRepoName)
	if err != nil {
		return nil, err
	}
	orderRepo, err := repoFromUOW[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	pickupShopRepo, err := repoFromUOW[PickupShopRepository](u, repoargs.PickupShopRepoName)
	if err != nil {
		return nil, err
	}
	return &DeliveryService{
		uow:            u,
		deliveryRepo:   deliveryRepo,
		orderRepo:      orderRepo,
		pickupShopRepo: pickupShopRepo,
		otp:            otp,
		log:            logger.WithField("component", "delivery_service"),
	}, nil
}

// deliveryParties участники доставки.
type deliveryParties struct {
	BuyerID     int64
	SellerID    int64
	CourierID   *int64
	ShopOwnerID *int64
}

func (p deliveryParties) isCourier(userID int64) bool {
	return p.CourierID != nil && *p.CourierID == userID
}

func (p deliveryParties) isShopOwner(userID int64) bool {
	return p.ShopOwnerID != nil && *p.ShopOwnerID == userID
}

// canConfirm покупатель, курьер и владелец пункта выдачи могут подтвердить получение.
func (p deliveryParties) canConfirm(actor Actor) bool {
	return actor.IsAdmin() || p.BuyerID == actor.UserID || p.isCourier(actor.UserID) || p.isShopOwner(actor.UserID)
}

// canView все участники, включая продавца.
func (p deliveryParties) canView(actor Actor) bool {
	return p.canConfirm(actor) || p.SellerID == actor.UserID
}

func loadParties(
	ctx context.Context,
	orderRepo OrderRepository,
	shopRepo PickupShopRepository,
	delivery *domain.Delivery,
) (*deliveryParties, *domain.Order, *domain.PickupShop, error) {
	order, err := orderRepo.FindByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, nil, nil, err //nolint:wrapcheck
	}
	parties := &deliveryParties{
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		CourierID: delivery.CourierID,
	}
	var shop *domain.PickupShop
	if delivery.PickupShopID != nil {
		if shop, err = shopRepo.FindByID(ctx, *delivery.PickupShopID); err != nil {
			return nil, nil, nil, err //nolint:wrapcheck
		}
		parties.ShopOwnerID = &shop.OwnerID
	}
	return parties, order, shop, nil
}

// TrackingView доставка с историей перемещений.
type TrackingView struct {
	Delivery     *domain.Delivery
	History      []domain.DeliveryTracking
	Confirmation *domain.DeliveryConfirmation
}

// Track возвращает доставку по коду отслеживания. Доступно участникам заказа и администраторам.
func (d *DeliveryService) Track(ctx context.Context, actor Actor, code string) (*TrackingView, error) {
	delivery, err := d.deliveryRepo.FindByTrackingCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("tracking delivery: %w", err)
	}
	parties, _, _, err := loadParties(ctx, d.orderRepo, d.pickupShopRepo, delivery)
	if err != nil {
		return nil, fmt.Errorf("tracking delivery: %w", err)
	}
	if !parties.canView(actor) {
		return nil, fmt.Errorf("tracking delivery %s: %w", code, domain.ErrForbidden)
	}

	history, err := d.deliveryRepo.Tracking(ctx, delivery.ID)
	if err != nil {
		return nil, fmt.Errorf("tracking delivery: %w", err)
	}
	view := &TrackingView{Delivery: delivery, History: history}
	view.Confirmation, err = d.deliveryRepo.FindConfirmation(ctx, delivery.ID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("tracking delivery: %w", err)
	}
	return view, nil
}

// QRCode PNG с QR токеном доставки. Показывается покупателем курьеру при получении.
func (d *DeliveryService) QRCode(ctx context.Context, actor Actor, deliveryID int64) ([]byte, error) {
	delivery, err := d.deliveryRepo.FindByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("rendering qr code: %w", err)
	}
	parties, _, _, err := loadParties(ctx, d.orderRepo, d.pickupShopRepo, delivery)
	if err != nil {
		return nil, fmt.Errorf("rendering qr code: %w", err)
	}
	if !actor.IsAdmin() && parties.BuyerID != actor.UserID && !parties.isCourier(actor.UserID) {
		return nil, fmt.Errorf("rendering qr code: %w", domain.ErrForbidden)
	}
	png, err := qrcode.Encode(delivery.QRCode, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("rendering qr code: %w", err)
	}
	return png, nil
}

// IssueOTP выдает покупателю новый одноразовый код подтверждения, предыдущий код перестает действовать.
func (d *DeliveryService) IssueOTP(ctx context.Context, actor Actor, deliveryID int64) (string, error) {
	delivery, err := d.deliveryRepo.FindByID(ctx, deliveryID)
	if err != nil {
		return "", fmt.Errorf("issuing otp: %w", err)
	}
	order, err := d.orderRepo.FindByID(ctx, delivery.OrderID)
	if err != nil {
		return "", fmt.Errorf("issuing otp: %w", err)
	}
	if order.BuyerID != actor.UserID {
		return "", fmt.Errorf("issuing otp: %w", domain.ErrForbidden)
	}
	if delivery.Status.IsFinal() {
		return "", fmt.Errorf("issuing otp for %s delivery: %w", delivery.Status, domain.ErrInvalidStatusTransition)
	}

	code, err := newOTP()
	if err != nil {
		return "", fmt.Errorf("issuing otp: %w", err)
	}
	if err = d.otp.Save(ctx, deliveryID, code); err != nil {
		return "", fmt.Errorf("issuing otp: %w", err)
	}
	return code, nil
}

// Accept курьер берет себе доставку, у которой еще нет курьера.
func (d *DeliveryService) Accept(ctx context.Context, actor Actor, deliveryID int64) (*domain.Delivery, error) {
	if actor.Role != domain.UserTypeDelivery {
		return nil, fmt.Errorf("accepting delivery: %w", domain.ErrForbidden)
	}
	var delivery *domain.Delivery
	txErr := d.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if err != nil {
			return err
		}
		if delivery, err = repo.AssignCourier(ctx, deliveryID, actor.UserID, true); err != nil {
			return err //nolint:wrapcheck
		}
		_, err = repo.AddTracking(ctx, repoargs.AddTracking{
			DeliveryID: deliveryID,
			Status:     delivery.Status,
			Notes:      "Accepted by courier",
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("accepting delivery %d: %w", deliveryID, txErr)
	}
	return delivery, nil
}

type UpdateDeliveryStatusArgs struct {
	DeliveryID int64
	Status     domain.DeliveryStatusType
	Location   string
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	Notes      string
}

// UpdateStatus переводит доставку в следующий статус и пишет строку истории.
// Курьер ведет доставку, владелец пункта выдачи отмечает прибытие в пункт, отмена доступна только
// администратору. Статус delivered выставляется только через Confirm.
func (d *DeliveryService) UpdateStatus(
	ctx context.Context,
	actor Actor,
	args UpdateDeliveryStatusArgs,
) (*domain.Delivery, error) {
	if !args.Status.IsValid() {
		return nil, fmt.Errorf("updating delivery: %w", domain.NewValidationError("status", "unknown status"))
	}
	if args.Status == domain.DeliveryStatusDelivered {
		return nil, fmt.Errorf("updating delivery: use confirmation: %w", domain.ErrInvalidStatusTransition)
	}

	var delivery *domain.Delivery
	txErr := d.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		deliveryRepo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if err != nil {
			return err
		}
		orderRepo, err := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err
		}
		shopRepo, err := repoFromTX[PickupShopRepository](tx, repoargs.PickupShopRepoName)
		if err != nil {
			return err
		}

		if delivery, err = deliveryRepo.LockByID(ctx, args.DeliveryID); err != nil {
			return err //nolint:wrapcheck
		}
		parties, order, _, err := loadParties(ctx, orderRepo, shopRepo, delivery)
		if err != nil {
			return err
		}
		if err = checkStatusPermission(actor, parties, delivery, args.Status); err != nil {
			return err
		}

		if args.Status == domain.DeliveryStatusCancelled {
			if err = cancelDelivery(ctx, tx, order, delivery, "Cancelled by admin. "+args.Notes); err != nil {
				return err
			}
			delivery.Status = domain.DeliveryStatusCancelled
			return recordAdminAction(ctx, tx, actor, "cancel_delivery", "delivery", &delivery.ID, args.Notes)
		}

		if err = delivery.Status.CheckTransition(args.Status); err != nil {
			return err //nolint:wrapcheck
		}
		if delivery, err = deliveryRepo.UpdateStatus(ctx, repoargs.UpdateDeliveryStatus{
			ID:   delivery.ID,
			From: delivery.Status,
			To:   args.Status,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = deliveryRepo.AddTracking(ctx, repoargs.AddTracking{
			DeliveryID: delivery.ID,
			Status:     args.Status,
			Location:   args.Location,
			Latitude:   args.Latitude,
			Longitude:  args.Longitude,
			Notes:      args.Notes,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if orderStatus, ok := args.Status.OrderStatus(); ok {
			return orderRepo.UpdateStatus(ctx, order.ID, orderStatus) //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating delivery %d: %w", args.DeliveryID, txErr)
	}
	return delivery, nil
}

func checkStatusPermission(
	actor Actor,
	parties *deliveryParties,
	delivery *domain.Delivery,
	next domain.DeliveryStatusType,
) error {
	switch next {
	case domain.DeliveryStatusInTransit:
		if actor.IsAdmin() || parties.isCourier(actor.UserID) {
			return nil
		}
	case domain.DeliveryStatusAtPickupShop:
		if delivery.PickupShopID == nil {
			return fmt.Errorf("delivery %d has no pickup shop: %w", delivery.ID, domain.ErrInvalidStatusTransition)
		}
		if actor.IsAdmin() || parties.isCourier(actor.UserID) || parties.isShopOwner(actor.UserID) {
			return nil
		}
	case domain.DeliveryStatusCancelled:
		if actor.IsAdmin() {
			return nil
		}
	case domain.DeliveryStatusPending, domain.DeliveryStatusDelivered:
		return fmt.Errorf("delivery %s -> %s: %w", delivery.Status, next, domain.ErrInvalidStatusTransition)
	}
	return domain.ErrForbidden
}

type ConfirmDeliveryArgs struct {
	DeliveryID int64
	Method     domain.ConfirmationMethodType
	QRCode     string
	OTP        string
	Notes      string
}

// ConfirmResult итог подтверждения доставки. Settlement nil, если эскроу уже был закрыт.
type ConfirmResult struct {
	Delivery     *domain.Delivery
	Confirmation *domain.DeliveryConfirmation
	Settlement   *domain.Settlement
}

// Confirm подтверждает получение заказа и выплачивает эскроу.
//
// Алгоритм работы:
//  1. Проверяет, что передано ровно одно доказательство, соответствующее методу.
//  2. Проверяет, что подтверждает участник доставки или администратор и доставку можно перевести в delivered.
//  3. Сверяет доказательство. OTP при этом не гасится.
//  4. Одной транзакцией фиксирует подтверждение, переводит доставку и заказ в delivered
//     и выплачивает эскроу продавцу за вычетом комиссии пункта выдачи.
//  5. Только после коммита гасит OTP, поэтому неудачное подтверждение код не сжигает.
func (d *DeliveryService) Confirm(ctx context.Context, actor Actor, args ConfirmDeliveryArgs) (*ConfirmResult, error) {
	if err := checkProof(actor, args); err != nil {
		return nil, fmt.Errorf("confirming delivery: %w", err)
	}

	delivery, err := d.deliveryRepo.FindByID(ctx, args.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("confirming delivery: %w", err)
	}
	parties, _, _, err := loadParties(ctx, d.orderRepo, d.pickupShopRepo, delivery)
	if err != nil {
		return nil, fmt.Errorf("confirming delivery: %w", err)
	}
	if !parties.canConfirm(actor) {
		return nil, fmt.Errorf("confirming delivery %d: %w", args.DeliveryID, domain.ErrForbidden)
	}
	if err = checkConfirmable(delivery); err != nil {
		return nil, fmt.Errorf("confirming delivery %d: %w", args.DeliveryID, err)
	}

	switch args.Method {
	case domain.ConfirmationMethodQRCode:
		if subtle.ConstantTimeCompare([]byte(args.QRCode), []byte(delivery.QRCode)) != 1 {
			return nil, fmt.Errorf("confirming delivery: qr code mismatch: %w", domain.ErrInvalidConfirmation)
		}
	case domain.ConfirmationMethodOTP:
		if err = d.otp.Check(ctx, delivery.ID, args.OTP); err != nil {
			return nil, fmt.Errorf("confirming delivery: %w", err)
		}
	case domain.ConfirmationMethodAdmin:
	}

	var result = new(ConfirmResult)
	txErr := d.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		deliveryRepo, txErr := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if txErr != nil {
			return txErr
		}
		orderRepo, txErr := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
		if txErr != nil {
			return txErr
		}

		locked, txErr := deliveryRepo.LockByID(ctx, args.DeliveryID)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}
		if txErr = checkConfirmable(locked); txErr != nil {
			return txErr
		}

		result.Confirmation, txErr = deliveryRepo.CreateConfirmation(ctx, repoargs.CreateConfirmation{
			DeliveryID:  locked.ID,
			ConfirmedBy: actor.UserID,
			Method:      args.Method,
			Notes:       args.Notes,
		})
		if txErr != nil {
			if errors.Is(txErr, domain.ErrDuplicateKey) {
				return domain.ErrAlreadyConfirmed
			}
			return txErr //nolint:wrapcheck
		}

		now := time.Now()
		result.Delivery, txErr = deliveryRepo.UpdateStatus(ctx, repoargs.UpdateDeliveryStatus{
			ID:                 locked.ID,
			From:               locked.Status,
			To:                 domain.DeliveryStatusDelivered,
			ActualDeliveryDate: &now,
		})
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}
		if _, txErr = deliveryRepo.AddTracking(ctx, repoargs.AddTracking{
			DeliveryID: locked.ID,
			Status:     domain.DeliveryStatusDelivered,
			Notes:      fmt.Sprintf("Confirmed by %s", args.Method),
		}); txErr != nil {
			return txErr //nolint:wrapcheck
		}
		if txErr = orderRepo.UpdateStatus(ctx, locked.OrderID, domain.OrderStatusDelivered); txErr != nil {
			return txErr //nolint:wrapcheck
		}

		result.Settlement, txErr = settleEscrow(ctx, tx, locked)
		if txErr != nil {
			return txErr
		}
		if args.Method == domain.ConfirmationMethodAdmin {
			return recordAdminAction(ctx, tx, actor, "confirm_delivery", "delivery", &locked.ID, args.Notes)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("confirming delivery %d: %w", args.DeliveryID, txErr)
	}

	if args.Method == domain.ConfirmationMethodOTP {
		// доставка уже подтверждена, повторно код не примут
		if err = d.otp.Consume(ctx, delivery.ID, args.OTP); err != nil {
			d.log.WithError(err).WithField("delivery", delivery.ID).Warn("consuming otp failed")
		}
	}
	return result, nil
}

// checkConfirmable доставку можно перевести в delivered. Повторное подтверждение дает domain.ErrAlreadyConfirmed.
func checkConfirmable(delivery *domain.Delivery) error {
	if delivery.Status == domain.DeliveryStatusDelivered {
		return domain.ErrAlreadyConfirmed
	}
	return delivery.Status.CheckTransition(domain.DeliveryStatusDelivered) //nolint:wrapcheck
}

// checkProof метод подтверждения должен сопровождаться ровно одним соответствующим доказательством.
func checkProof(actor Actor, args ConfirmDeliveryArgs) error {
	hasQR, hasOTP := args.QRCode != "", args.OTP != ""
	switch args.Method {
	case domain.ConfirmationMethodQRCode:
		if hasQR && !hasOTP {
			return nil
		}
	case domain.ConfirmationMethodOTP:
		if hasOTP && !hasQR {
			return nil
		}
	case domain.ConfirmationMethodAdmin:
		if hasQR || hasOTP {
			break
		}
		if !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		return nil
	}
	return domain.ErrInvalidConfirmation
}

// settleEscrow выплачивает эскроу по заказу доставки. Продавцу зачисляется вся сумма,
// затем при наличии пункта выдачи комиссия списывается с продавца и зачисляется владельцу пункта.
// Закрытый или отсутствующий эскроу пропускается.
func settleEscrow(ctx context.Context, tx uow.TX, delivery *domain.Delivery) (*domain.Settlement, error) {
	orderRepo, err := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	walletRepo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}

	escrow, err := orderRepo.LockEscrowByOrderID(ctx, delivery.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, err //nolint:wrapcheck
	}
	if escrow.IsSettled() {
		return nil, nil //nolint:nilnil
	}

	var (
		rate      *decimal.Decimal
		shopOwner int64
	)
	if delivery.PickupShopID != nil {
		shopRepo, repoErr := repoFromTX[PickupShopRepository](tx, repoargs.PickupShopRepoName)
		if repoErr != nil {
			return nil, repoErr
		}
		shop, shopErr := shopRepo.FindByID(ctx, *delivery.PickupShopID)
		if shopErr != nil {
			return nil, shopErr //nolint:wrapcheck
		}
		rate, shopOwner = &shop.CommissionRate, shop.OwnerID
	}
	settlement := domain.NewSettlement(escrow.Amount, rate)

	if _, err = orderRepo.ReleaseEscrow(ctx, escrow.ID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	sellerWallet, err := walletRepo.FindByUserID(ctx, escrow.SellerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err = post(ctx, walletRepo, posting{
		WalletID:    sellerWallet.ID,
		Direction:   domain.DirectionCredit,
		Amount:      settlement.SellerCredit,
		Type:        domain.TransactionTypePayment,
		Status:      domain.TransactionStatusCompleted,
		Reference:   newReference(referencePrefixPayment),
		Description: fmt.Sprintf("Payment for order #%d", escrow.OrderID),
		OrderID:     &escrow.OrderID,
	}); err != nil {
		return nil, err
	}

	if !settlement.Commission.IsPositive() {
		return &settlement, nil
	}
	if _, err = post(ctx, walletRepo, posting{
		WalletID:    sellerWallet.ID,
		Direction:   domain.DirectionDebit,
		Amount:      settlement.Commission,
		Type:        domain.TransactionTypeCommission,
		Status:      domain.TransactionStatusCompleted,
		Reference:   newReference(referencePrefixCommission),
		Description: fmt.Sprintf("Pickup shop commission for order #%d", escrow.OrderID),
		OrderID:     &escrow.OrderID,
	}); err != nil {
		return nil, err
	}
	shopWallet, err := walletRepo.FindByUserID(ctx, shopOwner)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err = post(ctx, walletRepo, posting{
		WalletID:    shopWallet.ID,
		Direction:   domain.DirectionCredit,
		Amount:      settlement.Commission,
		Type:        domain.TransactionTypeCommission,
		Status:      domain.TransactionStatusCompleted,
		Reference:   newReference(referencePrefixCommission),
		Description: fmt.Sprintf("Commission for order #%d", escrow.OrderID),
		OrderID:     &escrow.OrderID,
	}); err != nil {
		return nil, err
	}
	return &settlement, nil
}
