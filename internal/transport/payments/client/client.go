// Package client HTTP клиент платежного шлюза.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const RoutePaymentStatus = "/api/payments/%s"

// Границы значения заголовка Retry-After в секундах.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

type StatusType string

const (
	StatusPending   StatusType = "PENDING"
	StatusSucceeded StatusType = "SUCCEEDED"
	StatusFailed    StatusType = "FAILED"
)

// IsFinal статус больше не изменится на стороне шлюза.
func (s StatusType) IsFinal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

type Response struct {
	Reference string     `json:"reference"`
	Status    StatusType `json:"status"`
}

// HTTPClient реализация клиента шлюза поверх net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient подменяет http.Client (таймауты, транспорт).
func (c HTTPClient) WithHTTPClient(hc *http.Client) HTTPClient {
	c.httpClient = hc
	return c
}

// PaymentStatus запрашивает у шлюза статус платежа по его номеру.
// При ответе со статусом отличным от http.StatusOK возвращает StatusCodeError, а при
// http.StatusTooManyRequests - TooManyRequestError.
//
//nolint:nonamedreturns
func (c HTTPClient) PaymentStatus(ctx context.Context, reference string) (response *Response, err error) {
	endpoint := c.baseURL + fmt.Sprintf(RoutePaymentStatus, url.PathEscape(reference))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w", readErr)
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %w", jsonErr)
	}
	if response == nil || response.Reference == "" {
		return nil, errors.New("parse response: empty reference")
	}
	return response, nil
}

// parseRetryAfter значения вне [1, 120] секунд и мусор заменяются на 60 секунд.
func parseRetryAfter(v string) time.Duration {
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < minRetryAfter || seconds > maxRetryAfter {
		seconds = defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
