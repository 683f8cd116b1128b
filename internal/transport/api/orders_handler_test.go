package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	handlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	const buyerID int64 = 1
	const poorBuyerID int64 = 2
	const mixedBuyerID int64 = 3
	shopID := int64(8)

	placed := &service.PlacedOrder{
		Order: &domain.Order{
			ID:          100,
			BuyerID:     buyerID,
			SellerID:    5,
			Status:      domain.OrderStatusPaid,
			TotalAmount: decimal.RequireFromString("250.50"),
		},
		Items:       []domain.OrderItem{{ProductID: 10, Quantity: 2, Price: decimal.RequireFromString("125.25")}},
		Delivery:    &domain.Delivery{ID: 4, OrderID: 100, Status: domain.DeliveryStatusPending, QRCode: "secret"},
		Transaction: &domain.Transaction{ID: 1, Reference: "PAY-0A1B2C3D", Amount: decimal.RequireFromString("250.50")},
	}

	validItems := []service.OrderItemArgs{{ProductID: 10, Quantity: 2}}
	s.mockOrderService.EXPECT().
		Place(gomock.Any(), service.PlaceOrderArgs{
			BuyerID:         buyerID,
			Items:           validItems,
			ShippingAddress: "Main road 1, Nsukka",
			PickupShopID:    &shopID,
		}).
		Return(placed, nil).Times(1)
	s.mockOrderService.EXPECT().
		Place(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.PlaceOrderArgs) (*service.PlacedOrder, error) {
			switch args.BuyerID {
			case poorBuyerID:
				return nil, fmt.Errorf("placing order: %w", domain.ErrNotEnoughBalance)
			case mixedBuyerID:
				return nil, fmt.Errorf("placing order: %w", domain.ErrMixedSellers)
			default:
				return nil, fmt.Errorf("placing order: %w", domain.ErrOutOfStock)
			}
		}).Times(3)

	validPayload := map[string]any{
		"items":            []map[string]any{{"product_id": 10, "quantity": 2}},
		"shipping_address": "Main road 1, Nsukka",
		"pickup_shop_id":   shopID,
	}

	cases := []struct {
		name       string
		payload    map[string]any
		token      string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			token:      s.token(buyerID, domain.UserTypeRegular),
			wantStatus: http.StatusCreated,
		}, {
			name:       "not enough balance",
			payload:    validPayload,
			token:      s.token(poorBuyerID, domain.UserTypeRegular),
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "mixed sellers",
			payload:    validPayload,
			token:      s.token(mixedBuyerID, domain.UserTypeRegular),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "out of stock",
			payload:    validPayload,
			token:      s.token(4, domain.UserTypeRegular),
			wantStatus: http.StatusConflict,
		}, {
			name:       "not authorized",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "no items",
			payload:    map[string]any{"items": []any{}, "shipping_address": "Main road 1"},
			token:      s.token(buyerID, domain.UserTypeRegular),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name: "zero quantity",
			payload: map[string]any{
				"items":            []map[string]any{{"product_id": 10, "quantity": 0}},
				"shipping_address": "Main road 1",
			},
			token:      s.token(buyerID, domain.UserTypeRegular),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, OrdersRoute, t.payload, t.token)
			s.checkStatus(t.wantStatus, status, body)
			if t.wantStatus != http.StatusCreated {
				return
			}
			var res PlacedOrderResponse
			s.decode(body, &res)
			s.Equal(int64(100), res.Order.ID)
			s.True(decimal.RequireFromString("250.50").Equal(res.Order.TotalAmount))
			s.Equal("PAY-0A1B2C3D", res.Transaction.Reference)
			s.Require().NotNil(res.Delivery)
			s.Equal(domain.DeliveryStatusPending, res.Delivery.Status)
			s.NotContains(string(body), "secret", "qr token must not leak")
		})
	}
}

func (s *OrderHandlerTestSuite) TestIndex() {
	var userID int64 = 1
	var noOrdersUserID int64 = 2

	orders := []domain.Order{
		{
			ID:          1,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			BuyerID:     userID,
			SellerID:    5,
			Status:      domain.OrderStatusPaid,
			TotalAmount: decimal.NewFromInt(300),
		},
	}
	s.mockOrderService.EXPECT().BuyerOrders(gomock.Any(), userID).Return(orders, nil)
	s.mockOrderService.EXPECT().BuyerOrders(gomock.Any(), noOrdersUserID).Return([]domain.Order{}, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   s.token(userID, domain.UserTypeRegular),
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "no orders",
			jwtToken:   s.token(noOrdersUserID, domain.UserTypeRegular),
			wantStatus: http.StatusNoContent,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodGet, OrdersRoute, nil, t.jwtToken)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

func (s *OrderHandlerTestSuite) TestShowAndCancel() {
	const buyerID int64 = 1
	const strangerID int64 = 9
	token := s.token(buyerID, domain.UserTypeRegular)
	strangerToken := s.token(strangerID, domain.UserTypeRegular)

	s.mockOrderService.EXPECT().
		Get(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(100)).
		Return(&service.OrderDetail{Order: &domain.Order{ID: 100, BuyerID: buyerID}}, nil).Times(1)
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(404)).
		Return(nil, fmt.Errorf("getting order: %w", domain.ErrRecordNotFound)).Times(1)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(100)).
		Return(&domain.Order{ID: 100, Status: domain.OrderStatusCancelled}, nil).Times(1)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), actorIs(strangerID, domain.UserTypeRegular), int64(100)).
		Return(nil, fmt.Errorf("cancelling order: %w", domain.ErrForbidden)).Times(1)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(101)).
		Return(nil, fmt.Errorf("cancelling order: %w", domain.ErrInvalidStatusTransition)).Times(1)

	cases := []struct {
		name       string
		method     string
		url        string
		token      string
		wantStatus int
	}{
		{name: "show", method: http.MethodGet, url: path("/orders/%d", 100), token: token, wantStatus: http.StatusOK},
		{name: "show missing", method: http.MethodGet, url: "/orders/404", token: token, wantStatus: http.StatusNotFound},
		{name: "show bad id", method: http.MethodGet, url: "/orders/abc", token: token, wantStatus: http.StatusBadRequest},
		{name: "cancel", method: http.MethodPost, url: "/orders/100/cancel", token: token, wantStatus: http.StatusOK},
		{
			name:       "cancel by stranger",
			method:     http.MethodPost,
			url:        "/orders/100/cancel",
			token:      strangerToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "cancel too late",
			method:     http.MethodPost,
			url:        "/orders/101/cancel",
			token:      token,
			wantStatus: http.StatusConflict,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(t.method, t.url, nil, t.token)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}
