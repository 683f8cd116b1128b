package redisrepo

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix      = "delivery:otp:"
	otpAttemptsPrefix = "delivery:otp:attempts:"

	// DefaultOTPMaxAttempts после стольких неверных попыток код аннулируется.
	DefaultOTPMaxAttempts int64 = 5
)

// OTPStore хранит одноразовые коды подтверждения доставки.
type OTPStore struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int64
}

func NewOTPStore(client *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{client: client, ttl: ttl, maxAttempts: DefaultOTPMaxAttempts}
}

// Save сохраняет код для доставки, заменяя ранее выданный.
func (s *OTPStore) Save(ctx context.Context, deliveryID int64, code string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(deliveryID), code, s.ttl)
		pipe.Del(ctx, otpAttemptsKey(deliveryID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("[redis/saving otp of delivery %d] %w", deliveryID, err)
	}
	return nil
}

// consumeScript удаляет код и счетчик попыток, только если сохранен именно этот код.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1], KEYS[2])
end
return 0
`)

// Check сверяет код, не удаляя его. Неверная попытка учитывается в счетчике.
// Если кода нет, он истек или не совпал, возвращает domain.ErrInvalidConfirmation.
func (s *OTPStore) Check(ctx context.Context, deliveryID int64, code string) error {
	stored, err := s.client.Get(ctx, otpKey(deliveryID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("[redis/checking otp of delivery %d] %w", deliveryID, domain.ErrInvalidConfirmation)
		}
		return fmt.Errorf("[redis/checking otp of delivery %d] %w", deliveryID, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		s.registerFailure(ctx, deliveryID)
		return fmt.Errorf("[redis/checking otp of delivery %d] %w", deliveryID, domain.ErrInvalidConfirmation)
	}
	return nil
}

// Consume гасит код после успешного подтверждения. Код, замененный новым после Check, не трогается.
func (s *OTPStore) Consume(ctx context.Context, deliveryID int64, code string) error {
	err := consumeScript.Run(ctx, s.client, []string{otpKey(deliveryID), otpAttemptsKey(deliveryID)}, code).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("[redis/consuming otp of delivery %d] %w", deliveryID, err)
	}
	return nil
}

// registerFailure считает неверные попытки и аннулирует код при превышении лимита.
func (s *OTPStore) registerFailure(ctx context.Context, deliveryID int64) {
	attempts, err := s.client.Incr(ctx, otpAttemptsKey(deliveryID)).Result()
	if err != nil {
		return
	}
	if attempts == 1 {
		s.client.Expire(ctx, otpAttemptsKey(deliveryID), s.ttl)
	}
	if attempts >= s.maxAttempts {
		s.client.Del(ctx, otpKey(deliveryID), otpAttemptsKey(deliveryID))
	}
}

func otpKey(deliveryID int64) string {
	return otpKeyPrefix + strconv.FormatInt(deliveryID, 10)
}

func otpAttemptsKey(deliveryID int64) string {
	return otpAttemptsPrefix + strconv.FormatInt(deliveryID, 10)
}
