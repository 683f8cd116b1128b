package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/storage"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	referencePrefixDeposit    = "DEP"
	referencePrefixWithdrawal = "WIT"
	referencePrefixPayment    = "PAY"
	referencePrefixRefund     = "REF"
	referencePrefixCommission = "COM"

	trackingCodePrefix   = "VC"
	trackingCodeLength   = 10
	trackingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	otpLength            = 6
)

// Actor пользователь, от имени которого выполняется операция.
type Actor struct {
	UserID int64
	Role   domain.UserType
	// IP адрес клиента, попадает в журнал действий администратора.
	IP string
}

func (a Actor) IsAdmin() bool {
	return a.Role == domain.UserTypeAdmin
}

// FileUpload файл, загружаемый в объектное хранилище.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// uploadFile кладет файл в хранилище под уникальным ключом в каталоге prefix и возвращает ключ.
func uploadFile(ctx context.Context, st ObjectStorage, prefix string, file FileUpload) (string, error) {
	key := storage.ObjectKey(prefix, file.Name)
	if err := st.Put(ctx, key, file.ContentType, file.Body, file.Size); err != nil {
		return "", err //nolint:wrapcheck
	}
	return key, nil
}

// repoFromUOW достает репозиторий вне транзакции.
func repoFromUOW[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name)) //nolint:wrapcheck
}

// repoFromTX достает репозиторий, привязанный к транзакции.
func repoFromTX[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name)) //nolint:wrapcheck
}

// newReference уникальный номер транзакции: префикс и 32 hex-символа случайного UUID.
func newReference(prefix string) string {
	id := uuid.New()
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(id[:]))
}

func newTrackingCode() (string, error) {
	code, err := randomString(trackingCodeAlphabet, trackingCodeLength)
	if err != nil {
		return "", err
	}
	return trackingCodePrefix + code, nil
}

func newOTP() (string, error) {
	return randomString("0123456789", otpLength)
}

func randomString(alphabet string, n int) (string, error) {
	var sb strings.Builder
	limit := big.NewInt(int64(len(alphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generating random string: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String(), nil
}

// posting движение средств по кошельку.
type posting struct {
	WalletID    int64
	Direction   domain.DirectionType
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Status      domain.TransactionStatusType
	Reference   string
	Description string
	OrderID     *int64
}

// post единственная точка изменения баланса: меняет баланс и пишет транзакцию. Вызывается только внутри
// unit of work. Баланс меняется для завершенных транзакций и для списаний в ожидании (холд),
// ожидающее пополнение баланс не меняет.
func post(ctx context.Context, repo WalletRepository, p posting) (*domain.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if p.Status == domain.TransactionStatusCompleted || p.Direction == domain.DirectionDebit {
		delta := p.Amount
		if p.Direction == domain.DirectionDebit {
			delta = delta.Neg()
		}
		if _, err := repo.ApplyDelta(ctx, p.WalletID, delta); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return repo.CreateTransaction(ctx, repoargs.CreateTransaction{ //nolint:wrapcheck
		WalletID:    p.WalletID,
		Direction:   p.Direction,
		Amount:      p.Amount,
		Type:        p.Type,
		Status:      p.Status,
		Reference:   p.Reference,
		Description: p.Description,
		OrderID:     p.OrderID,
	})
}

// recordAdminAction пишет действие администратора в журнал в рамках той же транзакции.
func recordAdminAction(
	ctx context.Context,
	tx uow.TX,
	actor Actor,
	action, model string,
	objectID *int64,
	details string,
) error {
	repo, err := repoFromTX[ModerationRepository](tx, repoargs.ModerationRepoName)
	if err != nil {
		return err
	}
	_, err = repo.CreateAdminLog(ctx, repoargs.CreateAdminLog{
		AdminID:       actor.UserID,
		Action:        action,
		ModelAffected: model,
		ObjectID:      objectID,
		IPAddress:     actor.IP,
		Details:       details,
	})
	return err //nolint:wrapcheck
}
