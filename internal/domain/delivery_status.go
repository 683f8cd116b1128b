package domain

import "fmt"

type DeliveryStatusType string

const (
	DeliveryStatusPending      DeliveryStatusType = "pending"
	DeliveryStatusInTransit    DeliveryStatusType = "in_transit"
	DeliveryStatusAtPickupShop DeliveryStatusType = "at_pickup_shop"
	DeliveryStatusDelivered    DeliveryStatusType = "delivered"
	DeliveryStatusCancelled    DeliveryStatusType = "cancelled"
)

// deliveryTransitions допустимые переходы статусов доставки.
// Переход в delivered разрешен только через подтверждение доставки.
var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryStatusPending:      {DeliveryStatusInTransit, DeliveryStatusCancelled},
	DeliveryStatusInTransit:    {DeliveryStatusAtPickupShop, DeliveryStatusDelivered, DeliveryStatusCancelled},
	DeliveryStatusAtPickupShop: {DeliveryStatusDelivered, DeliveryStatusCancelled},
}

func (s DeliveryStatusType) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusAtPickupShop,
		DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinal доставка завершена или отменена.
func (s DeliveryStatusType) IsFinal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusCancelled
}

// CanTransitionTo проверяет переход по таблице deliveryTransitions.
func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CheckTransition возвращает ErrInvalidStatusTransition если переход недопустим.
func (s DeliveryStatusType) CheckTransition(next DeliveryStatusType) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("delivery %s -> %s: %w", s, next, ErrInvalidStatusTransition)
	}
	return nil
}

// OrderStatus статус заказа, соответствующий статусу доставки. Второе значение false, если
// статус доставки не меняет статус заказа.
func (s DeliveryStatusType) OrderStatus() (OrderStatusType, bool) {
	switch s {
	case DeliveryStatusInTransit:
		return OrderStatusShipped, true
	case DeliveryStatusDelivered:
		return OrderStatusDelivered, true
	case DeliveryStatusCancelled:
		return OrderStatusCancelled, true
	default:
		return "", false
	}
}
