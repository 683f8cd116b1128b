package repoargs

import (
	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	WalletID    int64
	Direction   domain.DirectionType
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Status      domain.TransactionStatusType
	Reference   string
	Description string
	OrderID     *int64
}
