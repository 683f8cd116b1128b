package payments

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/payments/client"
)

type Client interface {
	PaymentStatus(ctx context.Context, reference string) (*client.Response, error)
}

type Servicer interface {
	PendingGatewayTransactions(ctx context.Context, afterID int64, limit uint) ([]domain.Transaction, error)
	Reconcile(ctx context.Context, updates []service.ReconcileArgs) error
}
