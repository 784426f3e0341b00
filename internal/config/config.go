package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Log      Log
	Postgres Postgres
	Fixtures Fixtures
}

type HTTP struct {
	Addr         string        `env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	SwaggerURL   string        `env:"SWAGGER_URL" env-default:"http://localhost:8080/swagger/doc.json"`
	// PprofEnabled монтирует /debug/pprof
	PprofEnabled bool          `env:"HTTP_PPROF_ENABLED" env-default:"false"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

type Postgres struct {
	Host            string `env:"DB_HOST" env-default:"localhost"`
	Port            string `env:"DB_PORT" env-default:"5432"`
	User            string `env:"DB_USER" env-default:"postgres"`
	Password        string `env:"DB_PASSWORD" env-default:"postgres"`
	Name            string `env:"DB_NAME" env-default:"orderdesk"`
	SSLMode         string `env:"DB_SSLMODE" env-default:"disable"`
	ConnectAttempts int    `env:"DB_CONNECT_ATTEMPTS" env-default:"10"`
}

// DSN строка подключения в формате lib/pq
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

// Fixtures пути к JSON-файлам для начальной загрузки данных
type Fixtures struct {
	Users  string `env:"USERS" env-default:"data/users.json"`
	Orders string `env:"ORDERS" env-default:"data/orders.json"`
	Offers string `env:"OFFERS" env-default:"data/offers.json"`
}

// New читает .env (если есть) и переменные окружения
func New(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
