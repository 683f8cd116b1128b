package repoargs

import (
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateDelivery struct {
	OrderID       int64
	PickupShopID  *int64
	TrackingCode  string
	QRCode        string
	EstimatedDate *time.Time
	Notes         string
}

type UpdateDeliveryStatus struct {
	ID                 int64
	From               domain.DeliveryStatusType
	To                 domain.DeliveryStatusType
	ActualDeliveryDate *time.Time
}

type CreateConfirmation struct {
	DeliveryID  int64
	ConfirmedBy int64
	Method      domain.ConfirmationMethodType
	Notes       string
}

type AddTracking struct {
	DeliveryID int64
	Status     domain.DeliveryStatusType
	Location   string
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	Notes      string
}

type CreatePickupShop struct {
	OwnerID        int64
	Name           string
	Address        string
	State          string
	LGA            string
	Community      string
	PhoneNumber    string
	CommissionRate decimal.Decimal
}

type PickupShopFilter struct {
	State     string
	LGA       string
	Community string
}
