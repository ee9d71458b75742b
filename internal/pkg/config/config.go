package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTTTL             = 7 * 24 * time.Hour
	defaultPaystackBaseURL    = "https://api.paystack.co"
	defaultPaystackTimeout    = 10 * time.Second
	defaultMapsTimeout        = 5 * time.Second
	defaultRedisLocationTTL   = 24 * time.Hour
	defaultReconcileMinAge    = 10 * time.Minute
	defaultNotificationBuffer = 256
)

type (
	Tasks struct {
		PaymentReconcileInterval time.Duration
		PaymentReconcileMinAge   time.Duration
		PaymentReconcileBatch    int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // емкость token bucket
		RateLimiterBurst int           // пополнение в секунду
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
		MinConns int
	}

	Redis struct {
		Addr        string
		Password    string
		DB          int
		LocationTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		ProducerBufferSize        int
	}

	KafkaHandlers struct {
		NotificationRequested NotificationRequested
	}

	NotificationRequested struct {
		ProcessTimeout time.Duration
	}

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}

	Paystack struct {
		SecretKey   string
		BaseURL     string
		CallbackURL string
		Timeout     time.Duration
	}

	Maps struct {
		APIKey  string
		Timeout time.Duration
	}

	SMTP struct {
		Host     string
		Port     string
		Username string
		Password string
		From     string
	}

	Admin struct {
		Email    string
		Password string
		Name     string
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Auth     Auth
		Paystack Paystack
		Maps     Maps
		SMTP     SMTP
		Admin    Admin
	}
)

func (k *Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		b = strings.TrimSpace(b)
		if b != "" {
			result = append(result, b)
		}
	}
	return result
}

func (a *Admin) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только настройки Postgres, для cmd/migrate.
func LoadDatabase() (*Database, error) {
	db := databaseFromEnv()
	if err := validateDatabase(&db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

func databaseFromEnv() Database {
	// некорректные значения дают 0, тогда пул берет значения по умолчанию
	maxConns, _ := osGetInt("POSTGRES_MAX_CONNS")
	minConns, _ := osGetInt("POSTGRES_MIN_CONNS")

	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: maxConns,
		MinConns: minConns,
	}
}

func loadFromEnv() (*Config, error) {
	reconcileInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileMinAge, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_MIN_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileBatch, err := osGetInt("BACKGROUND_PAYMENT_RECONCILE_BATCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerBuffer, err := osGetInt("KAFKA_SARAMA_PRODUCER_BUFFER_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_NOTIFICATION_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisLocationTTL, err := osGetEnvDuration("REDIS_LOCATION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("JWT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paystackTimeout, err := osGetEnvDuration("PAYSTACK_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mapsTimeout, err := osGetEnvDuration("GOOGLE_MAPS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			PaymentReconcileInterval: reconcileInterval,
			PaymentReconcileMinAge:   durationOrDefault(reconcileMinAge, defaultReconcileMinAge),
			PaymentReconcileBatch:    reconcileBatch,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: databaseFromEnv(),
		Redis: Redis{
			Addr:        os.Getenv("REDIS_ADDR"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          redisDB,
			LocationTTL: durationOrDefault(redisLocationTTL, defaultRedisLocationTTL),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				ProducerBufferSize:        intOrDefault(producerBuffer, defaultNotificationBuffer),
			},
			Handlers: KafkaHandlers{
				NotificationRequested: NotificationRequested{
					ProcessTimeout: notificationTimeout,
				},
			},
		},
		Auth: Auth{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  durationOrDefault(tokenTTL, defaultJWTTTL),
		},
		Paystack: Paystack{
			SecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:     stringOrDefault(os.Getenv("PAYSTACK_BASE_URL"), defaultPaystackBaseURL),
			CallbackURL: os.Getenv("PAYSTACK_CALLBACK_URL"),
			Timeout:     durationOrDefault(paystackTimeout, defaultPaystackTimeout),
		},
		Maps: Maps{
			APIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
			Timeout: durationOrDefault(mapsTimeout, defaultMapsTimeout),
		},
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Admin: Admin{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     stringOrDefault(os.Getenv("ADMIN_NAME"), "Administrator"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.PaymentReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.NotificationRequested.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_NOTIFICATION_PROCESS_TIMEOUT is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.Paystack.SecretKey == "" {
		return errors.New("PAYSTACK_SECRET_KEY is required")
	}

	if cfg.SMTP.Host == "" {
		return errors.New("SMTP_HOST is required")
	}
	if cfg.SMTP.Port == "" {
		return errors.New("SMTP_PORT is required")
	}
	if cfg.SMTP.From == "" {
		return errors.New("SMTP_FROM is required")
	}

	if (cfg.Admin.Email == "") != (cfg.Admin.Password == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetEnvDuration понимает и дни ("7d"), для срока жизни токена.
func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	if days, ok := strings.CutSuffix(val, "d"); ok {
		n, err := strconv.Atoi(days)
		if err == nil {
			return time.Duration(n) * 24 * time.Hour, nil
		}
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func durationOrDefault(val, def time.Duration) time.Duration {
	if val == 0 {
		return def
	}
	return val
}

func intOrDefault(val, def int) int {
	if val == 0 {
		return def
	}
	return val
}

func stringOrDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
