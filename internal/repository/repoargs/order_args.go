package repoargs

import (
	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	BuyerID         int64
	SellerID        int64
	Status          domain.OrderStatusType
	ShippingAddress string
	TotalAmount     decimal.Decimal
	Notes           string
}

type CreateOrderItem struct {
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}

type CreateEscrow struct {
	OrderID  int64
	Amount   decimal.Decimal
	BuyerID  int64
	SellerID int64
}
