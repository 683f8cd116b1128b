package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	walletColumns      = `id, created_at, updated_at, user_id, balance, is_active`
	transactionColumns = `id, created_at, updated_at, wallet_id, direction, amount, type, status, reference,
	description, order_id`

	defaultTransactionsLimit uint = 50
	maxTransactionsLimit     uint = 500
)

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

func (w *WalletRepository) CreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `INSERT INTO wallets (user_id) VALUES ($1) RETURNING `+walletColumns, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "creating wallet of user %d", userID)
	}
	return wallet, nil
}

func (w *WalletRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet of user %d", userID)
	}
	return wallet, nil
}

func (w *WalletRepository) FindByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1`, id)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet %d", id)
	}
	return wallet, nil
}

// ApplyDelta атомарно изменяет баланс кошелька на delta. Если баланс ушел бы в минус или кошелек неактивен,
// возвращает domain.ErrNotEnoughBalance.
func (w *WalletRepository) ApplyDelta(ctx context.Context, walletID int64, delta decimal.Decimal) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `UPDATE wallets SET balance = balance + $2, updated_at = now()
		WHERE id = $1 AND is_active AND balance + $2 >= 0 RETURNING `+walletColumns, walletID, delta)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrNotEnoughBalance, "applying %s to wallet %d", delta.String(), walletID)
	}
	return wallet, nil
}

func (w *WalletRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := w.conn.QueryRow(ctx, `INSERT INTO transactions
		(wallet_id, direction, amount, type, status, reference, description, order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+transactionColumns,
		args.WalletID, args.Direction, args.Amount, args.Type, args.Status, args.Reference, args.Description, args.OrderID,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction %s", args.Reference)
	}
	return t, nil
}

// Transactions возвращает историю операций кошелька, новые первыми.
func (w *WalletRepository) Transactions(ctx context.Context, walletID int64, limit uint) ([]domain.Transaction, error) {
	limit = limitOrDefault(limit, defaultTransactionsLimit, maxTransactionsLimit)
	rows, err := w.conn.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, walletID, limit)
	if err != nil {
		return nil, convertErr(err, "transactions of wallet %d", walletID)
	}
	transactions, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, convertErr(err, "transactions of wallet %d", walletID)
	}
	return transactions, nil
}

// LockTransactionByReference возвращает транзакцию, блокируя строку до конца транзакции БД.
func (w *WalletRepository) LockTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE reference = $1 FOR UPDATE`,
		reference)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking transaction %s", reference)
	}
	return t, nil
}

// UpdateTransactionStatus переводит транзакцию из статуса from в to. Если статус уже изменился,
// возвращает domain.ErrInvalidStatusTransition.
func (w *WalletRepository) UpdateTransactionStatus(
	ctx context.Context,
	id int64,
	from, to domain.TransactionStatusType,
) (*domain.Transaction, error) {
	row := w.conn.QueryRow(ctx, `UPDATE transactions SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2 RETURNING `+transactionColumns, id, from, to)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, noRowsAs(err, domain.ErrInvalidStatusTransition, "updating status of transaction %d", id)
	}
	return t, nil
}

// PendingGatewayTransactions страница незавершенных пополнений и выводов с id больше afterID,
// по возрастанию id.
func (w *WalletRepository) PendingGatewayTransactions(
	ctx context.Context,
	afterID int64,
	limit uint,
) ([]domain.Transaction, error) {
	rows, err := w.conn.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE status = 'pending' AND type IN ('deposit', 'withdrawal') AND id > $1
		ORDER BY id LIMIT $2`, afterID, limit)
	if err != nil {
		return nil, convertErr(err, "pending gateway transactions")
	}
	transactions, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, convertErr(err, "pending gateway transactions")
	}
	return transactions, nil
}

func scanWallet(row scanner) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.UserID, &w.Balance, &w.IsActive); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.WalletID,
		&t.Direction,
		&t.Amount,
		&t.Type,
		&t.Status,
		&t.Reference,
		&t.Description,
		&t.OrderID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
