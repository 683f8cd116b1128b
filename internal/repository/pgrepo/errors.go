package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
	fkViolationCode     = "23503"

	walletBalanceConstraint = "wallets_balance_non_negative"
	productStockConstraint  = "products_quantity_available_check"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Для ошибок базы Postgres определяет дубликаты ключей (uniqueViolationCode) как ErrDuplicateKey из domain.
//   - Ссылка на несуществующую запись (нарушение внешнего ключа) возвращается как ErrRecordNotFound.
//   - Нарушение CHECK на балансе кошелька и остатке товара возвращаются как ErrNotEnoughBalance и ErrOutOfStock.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolationErr(pgErr):
			errType = domain.ErrDuplicateKey
		case pgErr.Code == fkViolationCode:
			errType = domain.ErrRecordNotFound
		case isCheckViolationErr(pgErr, walletBalanceConstraint):
			errType = domain.ErrNotEnoughBalance
		case isCheckViolationErr(pgErr, productStockConstraint):
			errType = domain.ErrOutOfStock
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

func isCheckViolationErr(err *pgconn.PgError, constraint string) bool {
	return err.Code == checkViolationCode && err.ConstraintName == constraint
}

// noRowsAs подменяет отсутствие строк у охраняемого UPDATE бизнес-ошибкой target.
func noRowsAs(err error, target error, format string, formatArgs ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(format, formatArgs...), target)
	}
	return convertErr(err, format, formatArgs...)
}
