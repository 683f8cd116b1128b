package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	// Setenv восстановит исходные значения после теста.
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_USER_SECRET", "REDIS_ADDR",
		"PAYMENT_GATEWAY_ADDRESS", "PAYMENT_WORKERS", "OTP_TTL", "PICKUP_SHOP_CACHE_TTL", "S3_BUCKET",
		"TRUSTED_PROXIES",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestFlagsOnly() {
	conf, err := LoadConfig([]string{"-d", "postgres://localhost/vc", "-j", "secret", "-p", "http://gateway:8081"})
	s.Require().NoError(err)

	s.Equal("localhost:8080", conf.RunAddress)
	s.Equal("postgres://localhost/vc", conf.DatabaseDSN)
	s.Equal("secret", conf.JWTUserSecret)
	s.Equal("internal/db/migrations", conf.MigrationsDir)
	s.Equal("localhost:6379", conf.RedisAddr)
	s.Equal("http://gateway:8081", conf.PaymentGatewayAddress)
	s.Equal(uint(5), conf.PaymentWorkers)
	s.Equal(10*time.Minute, conf.OTPTTL)
	s.Equal(5*time.Minute, conf.PickupShopCacheTTL)
	s.Equal("village-connect", conf.S3Bucket)
	s.Empty(conf.TrustedProxies)
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("RUN_ADDRESS", ":9000")
	s.T().Setenv("DATABASE_URI", "postgres://db/vc")
	s.T().Setenv("JWT_USER_SECRET", "env-secret")
	s.T().Setenv("PAYMENT_WORKERS", "12")
	s.T().Setenv("OTP_TTL", "90s")

	conf, err := LoadConfig([]string{"-a", ":7000", "-d", "postgres://flag/vc", "-j", "flag-secret"})
	s.Require().NoError(err)

	s.Equal(":9000", conf.RunAddress)
	s.Equal("postgres://db/vc", conf.DatabaseDSN)
	s.Equal("env-secret", conf.JWTUserSecret)
	s.Equal(uint(12), conf.PaymentWorkers)
	s.Equal(90*time.Second, conf.OTPTTL)
}

func (s *ConfigTestSuite) TestTrustedProxies() {
	s.T().Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.10")

	conf, err := LoadConfig([]string{"-d", "postgres://localhost/vc", "-j", "secret"})
	s.Require().NoError(err)
	s.Equal([]string{"10.0.0.0/8", "192.168.1.10"}, conf.TrustedProxies)
}

func (s *ConfigTestSuite) TestRequired() {
	_, err := LoadConfig([]string{"-j", "secret"})
	s.ErrorIs(err, ErrDatabaseDSNRequired)

	_, err = LoadConfig([]string{"-d", "postgres://localhost/vc"})
	s.ErrorIs(err, ErrJWTSecretRequired)
}

func (s *ConfigTestSuite) TestInvalidEnv() {
	s.T().Setenv("OTP_TTL", "ten minutes")

	_, err := LoadConfig([]string{"-d", "postgres://localhost/vc", "-j", "secret"})
	s.Error(err)
}

func (s *ConfigTestSuite) TestStringHidesSecrets() {
	conf := Config{DatabaseDSN: "postgres://user:pass@db/vc", JWTUserSecret: "top-secret", S3SecretKey: "s3-secret"}
	out := conf.String()

	s.NotContains(out, "pass@db")
	s.NotContains(out, "top-secret")
	s.NotContains(out, "s3-secret")
}
