package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port           string   `yaml:"port"`
	APIURL         string   `yaml:"api_url"`
	ClientURL      string   `yaml:"client_url"`
	Timezone       string   `yaml:"timezone"`
	CORSOrigins    []string `yaml:"cors_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	MigrateOnStart bool     `yaml:"migrate_on_start"`
}

type PostgresConfig struct {
	URI             string        `yaml:"uri"`
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
}

type PaymentConfig struct {
	StoreID   string        `yaml:"store_id"`
	StorePass string        `yaml:"store_pass"`
	IsLive    bool          `yaml:"is_live"`
	Currency  string        `yaml:"currency"`
	Timeout   time.Duration `yaml:"timeout"`
}

type MailConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	User     string        `yaml:"user"`
	Password string        `yaml:"password"`
	Owner    string        `yaml:"owner"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Config struct {
	App      AppConfig      `yaml:"app"`
	Postgres PostgresConfig `yaml:"postgres"`
	Payment  PaymentConfig  `yaml:"payment"`
	Mail     MailConfig     `yaml:"mail"`
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Port:           "5000",
			Timezone:       "Asia/Dhaka",
			CORSOrigins:    []string{"*"},
			LogLevel:       "info",
			LogFormat:      "json",
			MigrateOnStart: true,
		},
		Postgres: PostgresConfig{
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
		},
		Payment: PaymentConfig{
			Currency: "BDT",
			Timeout:  30 * time.Second,
		},
		Mail: MailConfig{
			Host:    "smtp.gmail.com",
			Port:    587,
			Timeout: 20 * time.Second,
		},
	}
}

// Load reads envPath (a missing file is fine), then the YAML file named by CONFIG_FILE
// if any, then the process environment. Later sources win.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Mail.Owner == "" {
		cfg.Mail.Owner = cfg.Mail.User
	}
	cfg.App.APIURL = strings.TrimRight(cfg.App.APIURL, "/")
	cfg.App.ClientURL = strings.TrimRight(cfg.App.ClientURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	str("PORT", &cfg.App.Port)
	str("API_URL", &cfg.App.APIURL)
	str("CLIENT_URL", &cfg.App.ClientURL)
	str("TIMEZONE", &cfg.App.Timezone)
	str("LOG_LEVEL", &cfg.App.LogLevel)
	str("LOG_FORMAT", &cfg.App.LogFormat)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.App.CORSOrigins = splitList(v)
	}

	str("DB_URI", &cfg.Postgres.URI)

	str("SSL_STOREID", &cfg.Payment.StoreID)
	str("SSL_PASS", &cfg.Payment.StorePass)
	str("PAYMENT_CURRENCY", &cfg.Payment.Currency)

	str("MAIL_HOST", &cfg.Mail.Host)
	str("MAIL_USER", &cfg.Mail.User)
	str("MAIL_PASS", &cfg.Mail.Password)
	str("MAIL_OWNER", &cfg.Mail.Owner)

	var errs []error
	errs = append(errs,
		envBool("MIGRATE_ON_START", &cfg.App.MigrateOnStart),
		envInt32("DB_MAX_CONNS", &cfg.Postgres.MaxConns),
		envInt32("DB_MIN_CONNS", &cfg.Postgres.MinConns),
		envDuration("DB_MAX_CONN_LIFETIME", &cfg.Postgres.MaxConnLifetime),
		envBool("SSL_IS_LIVE", &cfg.Payment.IsLive),
		envDuration("PAYMENT_TIMEOUT", &cfg.Payment.Timeout),
		envInt("MAIL_PORT", &cfg.Mail.Port),
		envDuration("MAIL_TIMEOUT", &cfg.Mail.Timeout),
	)
	return errors.Join(errs...)
}

func (c *Config) validate() error {
	var errs []error
	if c.Postgres.URI == "" {
		errs = append(errs, errors.New("DB_URI is required"))
	}
	if c.App.APIURL == "" {
		errs = append(errs, errors.New("API_URL is required"))
	}
	if c.App.ClientURL == "" {
		errs = append(errs, errors.New("CLIENT_URL is required"))
	}
	if c.Postgres.MinConns > c.Postgres.MaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.Postgres.MinConns, c.Postgres.MaxConns))
	}
	return errors.Join(errs...)
}

// MailEnabled reports whether SMTP credentials were supplied.
func (c *Config) MailEnabled() bool {
	return c.Mail.User != "" && c.Mail.Password != ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envInt32(key string, dst *int32) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = int32(n)
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
