package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrDatabaseDSNRequired = errors.New("database DSN is not set")
	ErrJWTSecretRequired   = errors.New("jwt user secret is not set")
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`

	// TrustedProxies адреса и подсети прокси через запятую. Пусто: X-Forwarded-For игнорируется.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// PaymentGatewayAddress пустой адрес отключает шлюз: пополнения и выводы проводятся сразу.
	PaymentGatewayAddress string `env:"PAYMENT_GATEWAY_ADDRESS"`
	PaymentWorkers        uint   `env:"PAYMENT_WORKERS" envDefault:"5"`

	S3Endpoint     string `env:"S3_ENDPOINT"`
	S3Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Bucket       string `env:"S3_BUCKET" envDefault:"village-connect"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`
	S3UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`

	OTPTTL             time.Duration `env:"OTP_TTL" envDefault:"10m"`
	PickupShopCacheTTL time.Duration `env:"PICKUP_SHOP_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig читает .env (если есть), окружение и флаги командной строки. Окружение приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, ErrDatabaseDSNRequired
	}
	if conf.JWTUserSecret == "" {
		return nil, ErrJWTSecretRequired
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	flags := flag.NewFlagSet("villageconnect", flag.ContinueOnError)

	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	flags.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	flags.StringVar(&flagConfig.PaymentGatewayAddress, "p", "", "Payment gateway base URL")

	return flags.Parse(args) //nolint:wrapcheck
}

// mergeConfig строковые параметры берутся из окружения, а при их отсутствии из флагов.
// Остальные параметры задаются только окружением.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig

	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.JWTUserSecret = defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	conf.PaymentGatewayAddress = defaultIfBlank(envConfig.PaymentGatewayAddress, flagsConfig.PaymentGatewayAddress)

	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// String скрывает секреты при выводе конфига в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s TrustedProxies:%v MigrationsDir:%s RedisAddr:%s RedisDB:%d PaymentGatewayAddress:%s PaymentWorkers:%d "+
			"S3Endpoint:%s S3Region:%s S3Bucket:%s S3UsePathStyle:%t OTPTTL:%s PickupShopCacheTTL:%s}",
		c.RunAddress, c.TrustedProxies, c.MigrationsDir, c.RedisAddr, c.RedisDB, c.PaymentGatewayAddress, c.PaymentWorkers,
		c.S3Endpoint, c.S3Region, c.S3Bucket, c.S3UsePathStyle, c.OTPTTL, c.PickupShopCacheTTL,
	)
}
