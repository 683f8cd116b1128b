package payments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/logger"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/payments/client"
	"github.com/fsdevblog/village-connect/internal/transport/payments/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	s.processor = New(s.mockService, "", logger.New(io.Discard)).SetWorkers(2)
	s.processor.client = s.mockHTTPClient
	s.processor.idleDelay = 10 * time.Millisecond
	s.processor.idleJitter = 0
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func pending(refs ...string) []domain.Transaction {
	res := make([]domain.Transaction, 0, len(refs))
	for i, ref := range refs {
		res = append(res, domain.Transaction{
			ID:        int64(i + 1),
			Reference: ref,
			Status:    domain.TransactionStatusPending,
		})
	}
	return res
}

func (s *ProcessorTestSuite) TestProcess_NoTransactions() {
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), int64(0), s.processor.limitPerIteration).
		Return([]domain.Transaction{}, nil)

	_, err := s.processor.process(s.T().Context())
	s.ErrorIs(err, ErrNoTransactions)
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	dbErr := errors.New("db down")
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dbErr)

	_, err := s.processor.process(s.T().Context())
	s.ErrorIs(err, dbErr)
}

// TestProcess_FinalStatuses в сервис уходят только итоговые статусы, PENDING и ошибки шлюза пропускаются.
func (s *ProcessorTestSuite) TestProcess_FinalStatuses() {
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), int64(0), s.processor.limitPerIteration).
		Return(pending("DEP-00000001", "WIT-00000002", "DEP-00000003", "DEP-00000004"), nil)

	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000001").
		Return(&client.Response{Reference: "DEP-00000001", Status: client.StatusSucceeded}, nil)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "WIT-00000002").
		Return(&client.Response{Reference: "WIT-00000002", Status: client.StatusFailed}, nil)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000003").
		Return(&client.Response{Reference: "DEP-00000003", Status: client.StatusPending}, nil)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000004").
		Return(nil, client.NewStatusCodeError(http.StatusInternalServerError))

	s.mockService.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.ReconcileArgs) {
			s.ElementsMatch([]service.ReconcileArgs{
				{Reference: "DEP-00000001", Succeeded: true},
				{Reference: "WIT-00000002", Succeeded: false},
			}, updates)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	reconciled, err := s.processor.process(ctx)
	s.Require().NoError(err)
	s.Equal(2, reconciled)
}

// TestProcess_OnlyPending сервис не вызывается, если итоговых статусов нет.
func (s *ProcessorTestSuite) TestProcess_OnlyPending() {
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pending("DEP-00000001"), nil)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000001").
		Return(&client.Response{Reference: "DEP-00000001", Status: client.StatusPending}, nil)
	s.mockService.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Times(0)

	reconciled, err := s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Zero(reconciled)
}

// TestProcess_RetryAfter после 429 воркер ждет и повторяет запрос.
func (s *ProcessorTestSuite) TestProcess_RetryAfter() {
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pending("DEP-00000001"), nil)
	gomock.InOrder(
		s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000001").
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000001").
			Return(&client.Response{Reference: "DEP-00000001", Status: client.StatusSucceeded}, nil),
	)
	s.mockService.EXPECT().
		Reconcile(gomock.Any(), []service.ReconcileArgs{{Reference: "DEP-00000001", Succeeded: true}}).
		Return(nil)

	reconciled, err := s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Equal(1, reconciled)
}

// TestProcess_CursorPaging зависшие в PENDING транзакции не мешают дойти до следующих страниц,
// после неполной страницы опрос начинается сначала.
func (s *ProcessorTestSuite) TestProcess_CursorPaging() {
	s.processor.SetLimitPerIteration(2)

	firstPage := pending("DEP-00000001", "DEP-00000002")
	secondPage := []domain.Transaction{{ID: 3, Reference: "DEP-00000003", Status: domain.TransactionStatusPending}}
	gomock.InOrder(
		s.mockService.EXPECT().PendingGatewayTransactions(gomock.Any(), int64(0), uint(2)).Return(firstPage, nil),
		s.mockService.EXPECT().PendingGatewayTransactions(gomock.Any(), int64(2), uint(2)).Return(secondPage, nil),
		s.mockService.EXPECT().PendingGatewayTransactions(gomock.Any(), int64(0), uint(2)).Return(firstPage, nil),
	)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000001").
		Return(&client.Response{Reference: "DEP-00000001", Status: client.StatusPending}, nil).Times(2)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000002").
		Return(&client.Response{Reference: "DEP-00000002", Status: client.StatusPending}, nil).Times(2)
	s.mockHTTPClient.EXPECT().PaymentStatus(gomock.Any(), "DEP-00000003").
		Return(&client.Response{Reference: "DEP-00000003", Status: client.StatusSucceeded}, nil)
	s.mockService.EXPECT().
		Reconcile(gomock.Any(), []service.ReconcileArgs{{Reference: "DEP-00000003", Succeeded: true}}).
		Return(nil)

	reconciled, err := s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Zero(reconciled)
	s.Equal(int64(2), s.processor.cursor)

	reconciled, err = s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Equal(1, reconciled)
	s.Zero(s.processor.cursor)

	_, err = s.processor.process(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(2), s.processor.cursor)
}

// TestRun_StopsOnCancel цикл завершается после отмены контекста.
func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().
		PendingGatewayTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		MinTimes(1)

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
