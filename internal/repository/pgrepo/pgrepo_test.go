package pgrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type PgRepoTestSuite struct {
	suite.Suite
}

func TestPgRepoSuite(t *testing.T) {
	suite.Run(t, new(PgRepoTestSuite))
}

func (s *PgRepoTestSuite) TestConvertErr() {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{
			name: "wallet check",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: walletBalanceConstraint},
			want: domain.ErrNotEnoughBalance,
		},
		{
			name: "stock check",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: productStockConstraint},
			want: domain.ErrOutOfStock,
		},
		{name: "foreign key", err: &pgconn.PgError{Code: fkViolationCode}, want: domain.ErrRecordNotFound},
		{
			name: "other check",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "products_price_check"},
			want: domain.ErrUnknown,
		},
		{name: "wrapped", err: fmt.Errorf("query: %w", pgx.ErrNoRows), want: domain.ErrRecordNotFound},
		{name: "plain", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := convertErr(tt.err, "ctx %d", 1)
			s.Require().Error(err)
			s.ErrorIs(err, tt.want)
			s.Contains(err.Error(), "[repository/ctx 1]")
		})
	}

	s.NoError(convertErr(nil, "nothing"))
}

func (s *PgRepoTestSuite) TestNoRowsAs() {
	s.ErrorIs(noRowsAs(pgx.ErrNoRows, domain.ErrNotEnoughBalance, "wallet"), domain.ErrNotEnoughBalance)
	s.ErrorIs(noRowsAs(&pgconn.PgError{Code: uniqueViolationCode}, domain.ErrNotEnoughBalance, "wallet"),
		domain.ErrDuplicateKey)
}

func (s *PgRepoTestSuite) TestMigrateDSN() {
	s.Equal("pgx5://u:p@localhost:5432/db?sslmode=disable",
		migrateDSN("postgres://u:p@localhost:5432/db?sslmode=disable"))
	s.Equal("pgx5://localhost/db", migrateDSN("postgresql://localhost/db"))
	s.Equal("host=localhost dbname=db", migrateDSN("host=localhost dbname=db"))
}

func (s *PgRepoTestSuite) TestEscapeLike() {
	s.Equal(`50\% off\_now\\`, escapeLike(`50% off_now\`))
}

func (s *PgRepoTestSuite) TestLimitOrDefault() {
	s.Equal(uint(20), limitOrDefault(0, 20, 100))
	s.Equal(uint(100), limitOrDefault(1000, 20, 100))
	s.Equal(uint(7), limitOrDefault(7, 20, 100))
}
