package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestPaymentStatus() {
	type tcase struct {
		name           string
		reference      string
		httpStatus     int
		retryAfter     string
		wantResponse   *Response
		wantStatusErr  bool
		wantRetryAfter time.Duration
	}

	cases := []tcase{
		{
			name:         "succeeded",
			reference:    "DEP-0A1B2C3D",
			httpStatus:   http.StatusOK,
			wantResponse: &Response{Reference: "DEP-0A1B2C3D", Status: StatusSucceeded},
		}, {
			name:         "pending",
			reference:    "WIT-0A1B2C3D",
			httpStatus:   http.StatusOK,
			wantResponse: &Response{Reference: "WIT-0A1B2C3D", Status: StatusPending},
		}, {
			name:          "not found",
			reference:     "DEP-00000000",
			httpStatus:    http.StatusNotFound,
			wantStatusErr: true,
		}, {
			name:           "too many requests",
			reference:      "DEP-11111111",
			httpStatus:     http.StatusTooManyRequests,
			retryAfter:     "5",
			wantRetryAfter: 5 * time.Second,
		}, {
			name:           "too many requests with bad header",
			reference:      "DEP-22222222",
			httpStatus:     http.StatusTooManyRequests,
			retryAfter:     "600",
			wantRetryAfter: 60 * time.Second,
		}, {
			name:          "internal error",
			reference:     "DEP-33333333",
			httpStatus:    http.StatusInternalServerError,
			wantStatusErr: true,
		},
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reference, ok := strings.CutPrefix(r.URL.Path, "/api/payments/")
		s.True(ok)

		var rc *tcase
		for _, c := range cases {
			if c.reference == reference {
				rc = &c
				break
			}
		}
		if rc == nil {
			s.Failf("unexpected request", "path %s", r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
			return
		}

		if rc.retryAfter != "" {
			w.Header().Set("Retry-After", rc.retryAfter)
		}
		if rc.httpStatus != http.StatusOK {
			w.WriteHeader(rc.httpStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(rc.wantResponse))
	}))

	for _, t := range cases {
		s.Run(t.name, func() {
			response, err := New(s.server.URL).PaymentStatus(s.T().Context(), t.reference)

			switch {
			case t.wantStatusErr:
				var statusErr *StatusCodeError
				s.Require().ErrorAs(err, &statusErr)
				s.Equal(t.httpStatus, statusErr.Code)
			case t.wantRetryAfter > 0:
				var tooMany *TooManyRequestError
				s.Require().ErrorAs(err, &tooMany)
				s.Equal(t.wantRetryAfter, tooMany.RetryAfter)
			default:
				s.Require().NoError(err)
				s.Equal(t.wantResponse, response)
			}
		})
	}
}

func (s *ClientTestSuite) TestStatusIsFinal() {
	s.False(StatusPending.IsFinal())
	s.True(StatusSucceeded.IsFinal())
	s.True(StatusFailed.IsFinal())
}
