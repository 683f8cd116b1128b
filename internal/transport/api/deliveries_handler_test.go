package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DeliveriesHandlerTestSuite struct {
	handlerSuite
}

func TestDeliveriesHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveriesHandlerTestSuite))
}

func (s *DeliveriesHandlerTestSuite) TestConfirm() {
	const buyerID int64 = 1
	token := s.token(buyerID, domain.UserTypeRegular)
	rate := decimal.NewFromInt(5)
	settlement := domain.NewSettlement(decimal.NewFromInt(200), &rate)

	s.mockDeliveryService.EXPECT().
		Confirm(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), service.ConfirmDeliveryArgs{
			DeliveryID: 4,
			Method:     domain.ConfirmationMethodQRCode,
			QRCode:     "qr-token",
		}).
		Return(&service.ConfirmResult{
			Delivery: &domain.Delivery{ID: 4, OrderID: 100, Status: domain.DeliveryStatusDelivered},
			Confirmation: &domain.DeliveryConfirmation{
				DeliveryID:  4,
				ConfirmedBy: buyerID,
				Method:      domain.ConfirmationMethodQRCode,
			},
			Settlement: &settlement,
		}, nil).Times(1)
	s.mockDeliveryService.EXPECT().
		Confirm(gomock.Any(), gomock.Any(), service.ConfirmDeliveryArgs{
			DeliveryID: 5,
			Method:     domain.ConfirmationMethodOTP,
			OTP:        "123456",
		}).
		Return(nil, fmt.Errorf("confirming delivery: %w", domain.ErrAlreadyConfirmed)).Times(1)
	s.mockDeliveryService.EXPECT().
		Confirm(gomock.Any(), gomock.Any(), service.ConfirmDeliveryArgs{
			DeliveryID: 6,
			Method:     domain.ConfirmationMethodOTP,
			OTP:        "000000",
		}).
		Return(nil, fmt.Errorf("confirming delivery: %w", domain.ErrInvalidConfirmation)).Times(1)

	cases := []struct {
		name       string
		url        string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "qr ok",
			url:        "/deliveries/4/confirm",
			payload:    map[string]any{"method": "qr_code", "qr_code": "qr-token"},
			wantStatus: http.StatusOK,
		}, {
			name:       "already confirmed",
			url:        "/deliveries/5/confirm",
			payload:    map[string]any{"method": "otp", "otp": "123456"},
			wantStatus: http.StatusConflict,
		}, {
			name:       "wrong otp",
			url:        "/deliveries/6/confirm",
			payload:    map[string]any{"method": "otp", "otp": "000000"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "unknown method",
			url:        "/deliveries/4/confirm",
			payload:    map[string]any{"method": "signature"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, t.url, t.payload, token)
			s.checkStatus(t.wantStatus, status, body)
			if t.wantStatus != http.StatusOK {
				return
			}
			var res ConfirmResponse
			s.decode(body, &res)
			s.Equal(domain.DeliveryStatusDelivered, res.Delivery.Status)
			s.Require().NotNil(res.Settlement)
			s.True(decimal.NewFromInt(200).Equal(res.Settlement.SellerCredit))
			s.True(decimal.NewFromInt(10).Equal(res.Settlement.Commission))
			s.True(decimal.NewFromInt(190).Equal(res.Settlement.SellerNet))
		})
	}
}

func (s *DeliveriesHandlerTestSuite) TestUpdateStatus() {
	const courierID int64 = 3
	token := s.token(courierID, domain.UserTypeDelivery)
	lat := decimal.RequireFromString("6.8567")

	s.mockDeliveryService.EXPECT().
		UpdateStatus(gomock.Any(), actorIs(courierID, domain.UserTypeDelivery), service.UpdateDeliveryStatusArgs{
			DeliveryID: 4,
			Status:     domain.DeliveryStatusInTransit,
			Location:   "Nsukka",
			Latitude:   &lat,
		}).
		Return(&domain.Delivery{ID: 4, Status: domain.DeliveryStatusInTransit}, nil).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "in transit",
			payload:    map[string]any{"status": "in_transit", "location": "Nsukka", "latitude": "6.8567"},
			wantStatus: http.StatusOK,
		}, {
			name:       "delivered only through confirmation",
			payload:    map[string]any{"status": "delivered"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "bad json",
			payload:    map[string]any{"status": 1},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, "/deliveries/4/status", t.payload, token)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

func (s *DeliveriesHandlerTestSuite) TestQRCodeAndOTP() {
	const buyerID int64 = 1
	token := s.token(buyerID, domain.UserTypeRegular)
	png := []byte("\x89PNG\r\n\x1a\n")

	s.mockDeliveryService.EXPECT().
		QRCode(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(4)).
		Return(png, nil).Times(1)
	s.mockDeliveryService.EXPECT().
		IssueOTP(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(4)).
		Return("654321", nil).Times(1)
	s.mockDeliveryService.EXPECT().
		IssueOTP(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), int64(5)).
		Return("", fmt.Errorf("issuing otp: %w", domain.ErrForbidden)).Times(1)

	status, body := s.do(http.MethodGet, "/deliveries/4/qr", nil, token)
	s.Equal(http.StatusOK, status)
	s.Equal(png, body)

	status, body = s.do(http.MethodPost, "/deliveries/4/otp", nil, token)
	s.checkStatus(http.StatusCreated, status, body)
	var res struct {
		OTP string `json:"otp"`
	}
	s.decode(body, &res)
	s.Equal("654321", res.OTP)

	status, body = s.do(http.MethodPost, "/deliveries/5/otp", nil, token)
	s.checkStatus(http.StatusForbidden, status, body)
}

func (s *DeliveriesHandlerTestSuite) TestTrack() {
	const buyerID int64 = 1
	token := s.token(buyerID, domain.UserTypeRegular)

	s.mockDeliveryService.EXPECT().
		Track(gomock.Any(), actorIs(buyerID, domain.UserTypeRegular), "VC0A1B2C3D").
		Return(&service.TrackingView{
			Delivery: &domain.Delivery{ID: 4, TrackingCode: "VC0A1B2C3D", Status: domain.DeliveryStatusInTransit},
			History: []domain.DeliveryTracking{
				{Status: domain.DeliveryStatusPending},
				{Status: domain.DeliveryStatusInTransit, Location: "Nsukka"},
			},
		}, nil).Times(1)

	status, body := s.do(http.MethodGet, "/deliveries/track/VC0A1B2C3D", nil, token)
	s.checkStatus(http.StatusOK, status, body)
	var res TrackResponse
	s.decode(body, &res)
	s.Len(res.History, 2)
	s.Nil(res.Confirmation)
}
