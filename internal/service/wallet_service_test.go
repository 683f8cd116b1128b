package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	serviceSuite
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) newService(gateway bool) *WalletService {
	walletService, err := NewWalletService(s.mockUOW, gateway)
	s.Require().NoError(err)
	return walletService
}

func (s *WalletServiceTestSuite) TestDepositWithoutGateway() {
	amount := decimal.RequireFromString("150.25")
	s.mockWalletRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{ID: 7, UserID: 1}, nil)
	s.mockWalletRepo.EXPECT().ApplyDelta(gomock.Any(), int64(7), amount).Return(&domain.Wallet{ID: 7}, nil)
	s.mockWalletRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal(domain.DirectionCredit, args.Direction)
			s.Regexp(`^DEP-[0-9A-F]{8}$`, args.Reference)
			return &domain.Transaction{Status: args.Status, Reference: args.Reference}, nil
		})

	t, err := s.newService(false).Deposit(s.T().Context(), 1, amount)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, t.Status)
}

func (s *WalletServiceTestSuite) TestDepositWithGatewayStaysPending() {
	amount := decimal.NewFromInt(100)
	s.mockWalletRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{ID: 7, UserID: 1}, nil)
	// ожидающее пополнение баланс не меняет.
	s.mockWalletRepo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockWalletRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			return &domain.Transaction{Status: args.Status}, nil
		})

	t, err := s.newService(true).Deposit(s.T().Context(), 1, amount)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusPending, t.Status)
}

func (s *WalletServiceTestSuite) TestWithdraw() {
	s.Run("pending withdrawal holds funds", func() {
		amount := decimal.NewFromInt(40)
		s.mockWalletRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{ID: 7}, nil)
		s.mockWalletRepo.EXPECT().ApplyDelta(gomock.Any(), int64(7), amount.Neg()).Return(&domain.Wallet{ID: 7}, nil)
		s.mockWalletRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
				s.Equal(domain.DirectionDebit, args.Direction)
				s.Equal(domain.TransactionStatusPending, args.Status)
				return &domain.Transaction{Status: args.Status}, nil
			})

		_, err := s.newService(true).Withdraw(s.T().Context(), 1, amount)
		s.Require().NoError(err)
	})

	s.Run("not enough balance", func() {
		s.mockWalletRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&domain.Wallet{ID: 7}, nil)
		s.mockWalletRepo.EXPECT().ApplyDelta(gomock.Any(), int64(7), gomock.Any()).Return(nil, domain.ErrNotEnoughBalance)

		_, err := s.newService(false).Withdraw(s.T().Context(), 1, decimal.NewFromInt(1_000_000))
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	})

	s.Run("invalid amount", func() {
		for _, amount := range []string{"0", "-5", "1.001"} {
			_, err := s.newService(false).Withdraw(s.T().Context(), 1, decimal.RequireFromString(amount))
			var ve *domain.ValidationError
			s.Require().ErrorAs(err, &ve, amount)
		}
	})
}

func (s *WalletServiceTestSuite) TestReconcile() {
	amount := decimal.NewFromInt(50)
	transactions := map[string]*domain.Transaction{
		"DEP-00000001": {ID: 1, WalletID: 7, Amount: amount, Type: domain.TransactionTypeDeposit,
			Status: domain.TransactionStatusPending, Reference: "DEP-00000001"},
		"DEP-00000002": {ID: 2, WalletID: 7, Amount: amount, Type: domain.TransactionTypeDeposit,
			Status: domain.TransactionStatusPending, Reference: "DEP-00000002"},
		"WIT-00000003": {ID: 3, WalletID: 7, Amount: amount, Type: domain.TransactionTypeWithdrawal,
			Status: domain.TransactionStatusPending, Reference: "WIT-00000003"},
		"WIT-00000004": {ID: 4, WalletID: 7, Amount: amount, Type: domain.TransactionTypeWithdrawal,
			Status: domain.TransactionStatusPending, Reference: "WIT-00000004"},
		"DEP-00000005": {ID: 5, WalletID: 7, Amount: amount, Type: domain.TransactionTypeDeposit,
			Status: domain.TransactionStatusCompleted, Reference: "DEP-00000005"},
	}
	s.mockWalletRepo.EXPECT().LockTransactionByReference(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref string) (*domain.Transaction, error) {
			if t, ok := transactions[ref]; ok {
				return t, nil
			}
			return nil, domain.ErrRecordNotFound
		}).Times(6)

	s.mockWalletRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), int64(1),
		domain.TransactionStatusPending, domain.TransactionStatusCompleted).Return(&domain.Transaction{}, nil)
	s.mockWalletRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), int64(2),
		domain.TransactionStatusPending, domain.TransactionStatusFailed).Return(&domain.Transaction{}, nil)
	s.mockWalletRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), int64(3),
		domain.TransactionStatusPending, domain.TransactionStatusCompleted).Return(&domain.Transaction{}, nil)
	s.mockWalletRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), int64(4),
		domain.TransactionStatusPending, domain.TransactionStatusFailed).Return(&domain.Transaction{}, nil)

	// успешное пополнение и возврат холда по неуспешному выводу.
	s.mockWalletRepo.EXPECT().ApplyDelta(gomock.Any(), int64(7), amount).Return(&domain.Wallet{ID: 7}, nil).Times(2)
	s.mockWalletRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionTypeRefund, args.Type)
			s.Contains(args.Description, "WIT-00000004")
			return &domain.Transaction{}, nil
		})

	err := s.newService(true).Reconcile(s.T().Context(), []ReconcileArgs{
		{Reference: "DEP-00000001", Succeeded: true},
		{Reference: "DEP-00000002", Succeeded: false},
		{Reference: "WIT-00000003", Succeeded: true},
		{Reference: "WIT-00000004", Succeeded: false},
		{Reference: "DEP-00000005", Succeeded: true},
		{Reference: "DEP-FFFFFFFF", Succeeded: true},
	})
	s.Require().NoError(err)
}
