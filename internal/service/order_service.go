package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultOrdersLimit uint = 50

type OrderService struct {
	uow          uow.UOW
	orderRepo    OrderRepository
	deliveryRepo DeliveryRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := repoFromUOW[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	deliveryRepo, err := repoFromUOW[DeliveryRepository](u, repoargs.DeliveryRepoName)
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:          u,
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
	}, nil
}

type OrderItemArgs struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderArgs struct {
	BuyerID         int64
	Items           []OrderItemArgs
	ShippingAddress string
	Notes           string
	PickupShopID    *int64
}

// PlacedOrder результат оформления заказа.
type PlacedOrder struct {
	Order       *domain.Order
	Items       []domain.OrderItem
	Escrow      *domain.Escrow
	Delivery    *domain.Delivery
	Transaction *domain.Transaction
}

// Place оформляет заказ одной транзакцией.
//
// Алгоритм работы:
//  1. Блокирует товары, проверяет что они активны, принадлежат одному продавцу (не покупателю) и есть в наличии.
//  2. Резервирует остатки, создает заказ со статусом paid и позиции по текущим ценам.
//  3. Списывает сумму с кошелька покупателя (payment) и замораживает ее в эскроу.
//  4. Создает доставку с кодом отслеживания и QR токеном.
//
// Любая ошибка откатывает все шаги. Нехватка средств дает domain.ErrNotEnoughBalance.
func (o *OrderService) Place(ctx context.Context, args PlaceOrderArgs) (*PlacedOrder, error) {
	items, validateErr := normalizeOrderItems(args.Items)
	if validateErr != nil {
		return nil, fmt.Errorf("placing order: %w", validateErr)
	}
	address := strings.TrimSpace(args.ShippingAddress)
	if address == "" {
		return nil, fmt.Errorf("placing order: %w", domain.NewValidationError("shipping_address", "required"))
	}

	trackingCode, codeErr := newTrackingCode()
	if codeErr != nil {
		return nil, fmt.Errorf("placing order: %w", codeErr)
	}

	var placed = new(PlacedOrder)
	txErr := o.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		catalogRepo, err := repoFromTX[CatalogRepository](tx, repoargs.CatalogRepoName)
		if err != nil {
			return err
		}
		orderRepo, err := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err
		}
		walletRepo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		deliveryRepo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if err != nil {
			return err
		}

		if args.PickupShopID != nil {
			if shopErr := checkPickupShop(ctx, tx, *args.PickupShopID); shopErr != nil {
				return shopErr
			}
		}

		sellerID, orderItems, total, err := reserveProducts(ctx, catalogRepo, args.BuyerID, items)
		if err != nil {
			return err
		}

		placed.Order, err = orderRepo.CreateOrder(ctx, repoargs.CreateOrder{
			BuyerID:         args.BuyerID,
			SellerID:        sellerID,
			Status:          domain.OrderStatusPaid,
			ShippingAddress: address,
			TotalAmount:     total,
			Notes:           args.Notes,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if placed.Items, err = orderRepo.CreateItems(ctx, placed.Order.ID, orderItems); err != nil {
			return err //nolint:wrapcheck
		}

		buyerWallet, err := walletRepo.FindByUserID(ctx, args.BuyerID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		placed.Transaction, err = post(ctx, walletRepo, posting{
			WalletID:    buyerWallet.ID,
			Direction:   domain.DirectionDebit,
			Amount:      total,
			Type:        domain.TransactionTypePayment,
			Status:      domain.TransactionStatusCompleted,
			Reference:   newReference(referencePrefixPayment),
			Description: fmt.Sprintf("Payment for order #%d", placed.Order.ID),
			OrderID:     &placed.Order.ID,
		})
		if err != nil {
			return err
		}

		placed.Escrow, err = orderRepo.CreateEscrow(ctx, repoargs.CreateEscrow{
			OrderID:  placed.Order.ID,
			Amount:   total,
			BuyerID:  args.BuyerID,
			SellerID: sellerID,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		placed.Delivery, err = deliveryRepo.CreateDelivery(ctx, repoargs.CreateDelivery{
			OrderID:      placed.Order.ID,
			PickupShopID: args.PickupShopID,
			TrackingCode: trackingCode,
			QRCode:       uuid.NewString(),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		_, err = deliveryRepo.AddTracking(ctx, repoargs.AddTracking{
			DeliveryID: placed.Delivery.ID,
			Status:     domain.DeliveryStatusPending,
			Notes:      "Order placed",
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("placing order: %w", txErr)
	}
	return placed, nil
}

// normalizeOrderItems проверяет позиции и объединяет повторяющиеся товары. Результат упорядочен по id товара.
func normalizeOrderItems(items []OrderItemArgs) ([]OrderItemArgs, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item required")
	}
	quantities := make(map[int64]int64, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domain.NewValidationError("quantity", "must be at least 1")
		}
		quantities[item.ProductID] += item.Quantity
	}
	res := make([]OrderItemArgs, 0, len(quantities))
	for id, qty := range quantities {
		res = append(res, OrderItemArgs{ProductID: id, Quantity: qty})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ProductID < res[j].ProductID })
	return res, nil
}

// reserveProducts блокирует товары, проверяет их и списывает остатки. Возвращает продавца,
// позиции заказа с ценами на момент покупки и итоговую сумму.
func reserveProducts(
	ctx context.Context,
	repo CatalogRepository,
	buyerID int64,
	items []OrderItemArgs,
) (int64, []repoargs.CreateOrderItem, decimal.Decimal, error) {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	products, err := repo.LockProducts(ctx, ids)
	if err != nil {
		return 0, nil, decimal.Zero, err //nolint:wrapcheck
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var (
		sellerID   int64
		total      = decimal.Zero
		orderItems = make([]repoargs.CreateOrderItem, 0, len(items))
	)
	for i, item := range items {
		product, ok := byID[item.ProductID]
		switch {
		case !ok:
			return 0, nil, decimal.Zero, fmt.Errorf("product %d: %w", item.ProductID, domain.ErrRecordNotFound)
		case !product.IsActive:
			return 0, nil, decimal.Zero, fmt.Errorf("product %d: %w", item.ProductID, domain.ErrProductInactive)
		case product.SellerID == buyerID:
			return 0, nil, decimal.Zero, fmt.Errorf("product %d: %w", item.ProductID, domain.ErrOwnProduct)
		case i > 0 && product.SellerID != sellerID:
			return 0, nil, decimal.Zero, domain.ErrMixedSellers
		case product.QuantityAvailable < item.Quantity:
			return 0, nil, decimal.Zero, fmt.Errorf("product %d: %w", item.ProductID, domain.ErrOutOfStock)
		}
		sellerID = product.SellerID
		total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
		orderItems = append(orderItems, repoargs.CreateOrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	for _, item := range items {
		if err = repo.ChangeStock(ctx, repoargs.StockChange{ProductID: item.ProductID, Delta: -item.Quantity}); err != nil {
			return 0, nil, decimal.Zero, err //nolint:wrapcheck
		}
	}
	return sellerID, orderItems, total, nil
}

func checkPickupShop(ctx context.Context, tx uow.TX, shopID int64) error {
	shopRepo, err := repoFromTX[PickupShopRepository](tx, repoargs.PickupShopRepoName)
	if err != nil {
		return err
	}
	shop, err := shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !shop.IsVerified {
		return fmt.Errorf("pickup shop %d: %w", shopID, domain.ErrShopNotVerified)
	}
	return nil
}

// Cancel отменяет заказ: доставка и заказ переходят в cancelled, остатки возвращаются на склад,
// эскроу возвращается покупателю. Покупатель может отменить заказ, пока доставка не дошла до пункта выдачи,
// администратор - пока доставка не завершена.
func (o *OrderService) Cancel(ctx context.Context, actor Actor, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	txErr := o.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		orderRepo, err := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err
		}
		deliveryRepo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if err != nil {
			return err
		}

		order, err = orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if order.BuyerID != actor.UserID && !actor.IsAdmin() {
			return domain.ErrForbidden
		}

		delivery, err := deliveryRepo.FindByOrderID(ctx, orderID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if delivery, err = deliveryRepo.LockByID(ctx, delivery.ID); err != nil {
			return err //nolint:wrapcheck
		}
		if !actor.IsAdmin() && delivery.Status == domain.DeliveryStatusAtPickupShop {
			return fmt.Errorf("cancel at pickup shop: %w", domain.ErrInvalidStatusTransition)
		}

		if err = cancelDelivery(ctx, tx, order, delivery, "Cancelled by "+cancelledBy(actor)); err != nil {
			return err
		}
		order.Status = domain.OrderStatusCancelled
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, txErr)
	}
	return order, nil
}

func cancelledBy(actor Actor) string {
	if actor.IsAdmin() {
		return "admin"
	}
	return "buyer"
}

// cancelDelivery общая часть отмены доставки. Доставка должна быть заблокирована вызывающим.
func cancelDelivery(ctx context.Context, tx uow.TX, order *domain.Order, delivery *domain.Delivery, notes string) error {
	if err := delivery.Status.CheckTransition(domain.DeliveryStatusCancelled); err != nil {
		return err //nolint:wrapcheck
	}
	orderRepo, err := repoFromTX[OrderRepository](tx, repoargs.OrderRepoName)
	if err != nil {
		return err
	}
	deliveryRepo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
	if err != nil {
		return err
	}
	catalogRepo, err := repoFromTX[CatalogRepository](tx, repoargs.CatalogRepoName)
	if err != nil {
		return err
	}
	walletRepo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
	if err != nil {
		return err
	}

	if _, err = deliveryRepo.UpdateStatus(ctx, repoargs.UpdateDeliveryStatus{
		ID:   delivery.ID,
		From: delivery.Status,
		To:   domain.DeliveryStatusCancelled,
	}); err != nil {
		return err //nolint:wrapcheck
	}
	if _, err = deliveryRepo.AddTracking(ctx, repoargs.AddTracking{
		DeliveryID: delivery.ID,
		Status:     domain.DeliveryStatusCancelled,
		Notes:      notes,
	}); err != nil {
		return err //nolint:wrapcheck
	}
	if err = orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusCancelled); err != nil {
		return err //nolint:wrapcheck
	}

	items, err := orderRepo.Items(ctx, order.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	for _, item := range items {
		if err = catalogRepo.ChangeStock(ctx, repoargs.StockChange{ProductID: item.ProductID, Delta: item.Quantity}); err != nil {
			return err //nolint:wrapcheck
		}
	}

	escrow, err := orderRepo.LockEscrowByOrderID(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return err //nolint:wrapcheck
	}
	if escrow.IsSettled() {
		return nil
	}
	if _, err = orderRepo.RefundEscrow(ctx, escrow.ID); err != nil {
		return err //nolint:wrapcheck
	}
	buyerWallet, err := walletRepo.FindByUserID(ctx, escrow.BuyerID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, err = post(ctx, walletRepo, posting{
		WalletID:    buyerWallet.ID,
		Direction:   domain.DirectionCredit,
		Amount:      escrow.Amount,
		Type:        domain.TransactionTypeRefund,
		Status:      domain.TransactionStatusCompleted,
		Reference:   newReference(referencePrefixRefund),
		Description: fmt.Sprintf("Refund for cancelled order #%d", order.ID),
		OrderID:     &order.ID,
	})
	return err
}

// BuyerOrders возвращает заказы покупателя отсортированные по дате создания по убыванию.
func (o *OrderService) BuyerOrders(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByBuyerID(ctx, buyerID, defaultOrdersLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

type OrderDetail struct {
	Order    *domain.Order
	Items    []domain.OrderItem
	Delivery *domain.Delivery
}

// Get возвращает заказ покупателю, продавцу или администратору.
func (o *OrderService) Get(ctx context.Context, actor Actor, orderID int64) (*OrderDetail, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	if order.BuyerID != actor.UserID && order.SellerID != actor.UserID && !actor.IsAdmin() {
		return nil, fmt.Errorf("getting order %d: %w", orderID, domain.ErrForbidden)
	}
	items, err := o.orderRepo.Items(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	delivery, err := o.deliveryRepo.FindByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return &OrderDetail{Order: order, Items: items, Delivery: delivery}, nil
}
