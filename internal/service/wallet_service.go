package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	// gatewayEnabled пополнения и выводы ждут подтверждения платежного шлюза.
	gatewayEnabled bool
}

func NewWalletService(u uow.UOW, gatewayEnabled bool) (*WalletService, error) {
	walletRepo, err := repoFromUOW[WalletRepository](u, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}
	return &WalletService{
		uow:            u,
		walletRepo:     walletRepo,
		gatewayEnabled: gatewayEnabled,
	}, nil
}

func (w *WalletService) Wallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := w.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting wallet: %w", err)
	}
	return wallet, nil
}

// Transactions история операций пользователя, новые первыми.
func (w *WalletService) Transactions(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error) {
	wallet, err := w.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting transactions: %w", err)
	}
	transactions, err := w.walletRepo.Transactions(ctx, wallet.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("getting transactions: %w", err)
	}
	return transactions, nil
}

// Deposit создает пополнение. Без платежного шлюза пополнение зачисляется сразу, иначе остается
// в статусе pending до сверки со шлюзом.
func (w *WalletService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	t, err := w.move(ctx, userID, posting{
		Direction:   domain.DirectionCredit,
		Amount:      amount,
		Type:        domain.TransactionTypeDeposit,
		Reference:   newReference(referencePrefixDeposit),
		Description: "Wallet deposit",
	})
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	return t, nil
}

// Withdraw создает вывод средств. Сумма списывается сразу (холд), даже если шлюз еще не подтвердил вывод.
// Нехватка средств дает domain.ErrNotEnoughBalance.
func (w *WalletService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	t, err := w.move(ctx, userID, posting{
		Direction:   domain.DirectionDebit,
		Amount:      amount,
		Type:        domain.TransactionTypeWithdrawal,
		Reference:   newReference(referencePrefixWithdrawal),
		Description: "Wallet withdrawal",
	})
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	return t, nil
}

func (w *WalletService) move(ctx context.Context, userID int64, p posting) (*domain.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if !p.Amount.Equal(p.Amount.Round(2)) {
		return nil, domain.NewValidationError("amount", "at most 2 decimal places")
	}
	p.Status = domain.TransactionStatusCompleted
	if w.gatewayEnabled {
		p.Status = domain.TransactionStatusPending
	}

	var t *domain.Transaction
	txErr := w.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		wallet, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		p.WalletID = wallet.ID
		t, err = post(ctx, repo, p)
		return err
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return t, nil
}

// PendingGatewayTransactions страница незавершенных пополнений и выводов для сверки со шлюзом.
func (w *WalletService) PendingGatewayTransactions(
	ctx context.Context,
	afterID int64,
	limit uint,
) ([]domain.Transaction, error) {
	transactions, err := w.walletRepo.PendingGatewayTransactions(ctx, afterID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// ReconcileArgs итог платежа по данным шлюза.
type ReconcileArgs struct {
	Reference string
	Succeeded bool
}

// Reconcile применяет итоговые статусы шлюза одной транзакцией.
//
// Правила:
//   - успешное пополнение зачисляется на баланс и становится completed;
//   - неуспешное пополнение становится failed;
//   - успешный вывод становится completed (сумма уже списана);
//   - неуспешный вывод становится failed, а холд возвращается отдельной транзакцией refund.
//
// Неизвестные номера и транзакции, уже не находящиеся в pending, пропускаются.
func (w *WalletService) Reconcile(ctx context.Context, updates []ReconcileArgs) error {
	if len(updates) == 0 {
		return nil
	}
	txErr := w.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		for _, update := range updates {
			if err = reconcileOne(ctx, repo, update); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("reconciling payments: %w", txErr)
	}
	return nil
}

func reconcileOne(ctx context.Context, repo WalletRepository, update ReconcileArgs) error {
	t, err := repo.LockTransactionByReference(ctx, update.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return err //nolint:wrapcheck
	}
	if t.Status != domain.TransactionStatusPending {
		return nil
	}

	next := domain.TransactionStatusFailed
	if update.Succeeded {
		next = domain.TransactionStatusCompleted
	}
	if _, err = repo.UpdateTransactionStatus(ctx, t.ID, t.Status, next); err != nil {
		if errors.Is(err, domain.ErrInvalidStatusTransition) {
			return nil
		}
		return err //nolint:wrapcheck
	}

	switch {
	case t.Type == domain.TransactionTypeDeposit && update.Succeeded:
		_, err = repo.ApplyDelta(ctx, t.WalletID, t.Amount)
		return err //nolint:wrapcheck
	case t.Type == domain.TransactionTypeWithdrawal && !update.Succeeded:
		_, err = post(ctx, repo, posting{
			WalletID:    t.WalletID,
			Direction:   domain.DirectionCredit,
			Amount:      t.Amount,
			Type:        domain.TransactionTypeRefund,
			Status:      domain.TransactionStatusCompleted,
			Reference:   newReference(referencePrefixRefund),
			Description: "Failed withdrawal " + t.Reference,
		})
		return err
	default:
		return nil
	}
}
