package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Mongo    *Mongo
	Kafka    *Kafka
	Notify   *Notify
	Token    *Token
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Mongo struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DATABASE" envDefault:"techxchange"`
}

type Kafka struct {
	Brokers    string `env:"KAFKA_BROKERS"`
	OrderTopic string `env:"KAFKA_ORDER_TOPIC" envDefault:"techxchange.orders"`
}

// BrokerList splits the comma separated broker string; empty means events are disabled.
func (k *Kafka) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type Notify struct {
	Workers   int `env:"NOTIFY_WORKERS" envDefault:"2"`
	QueueSize int `env:"NOTIFY_QUEUE_SIZE" envDefault:"256"`
}

type Token struct {
	// Key is a hex encoded 32 byte symmetric key. A random key is generated when empty.
	Key string        `env:"TOKEN_KEY"`
	TTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

func NewConfig() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var mongo Mongo
	var kafka Kafka
	var notify Notify
	var token Token
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&mongo.URI, "n", `mongodb://localhost:27017`, "MongoDB URI for notifications")
	flag.StringVar(&kafka.Brokers, "k", "", "Kafka brokers, comma separated")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&mongo)
	if err != nil {
		return nil, fmt.Errorf("error parsing mongo config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&notify)
	if err != nil {
		return nil, fmt.Errorf("error parsing notify config: %w", err)
	}
	err = env.Parse(&token)
	if err != nil {
		return nil, fmt.Errorf("error parsing token config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Mongo:    &mongo,
		Kafka:    &kafka,
		Notify:   &notify,
		Token:    &token,
		App:      &app,
	}

	return &config, nil
}
