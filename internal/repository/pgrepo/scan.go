package pgrepo

import (
	"github.com/jackc/pgx/v5"
)

// scanner общий интерфейс pgx.Row и pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// collect вычитывает все строки rows функцией scan.
func collect[T any](rows pgx.Rows, scan func(scanner) (*T, error)) ([]T, error) {
	defer rows.Close()
	var res = make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}

// limitOrDefault ограничивает размер выборки.
func limitOrDefault(limit uint, def uint, maxLimit uint) uint {
	if limit == 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
