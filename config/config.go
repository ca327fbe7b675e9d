package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const NotificationsTopic = "notifications"

type Settings struct {
	MarketplacePort string
	GatewayPort     string
	MarketplaceURL  string
	PublicBaseURL   string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisHost string
	RedisPort string

	KafkaBroker        string
	NotificationsTopic string
	NotifyGroupID      string

	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string

	GoogleMapsAPIKey string
	GeocodeRegion    string

	SMSGatewayURL      string
	SMSGatewayUser     string
	SMSGatewayPassword string

	JWTSecret          string
	SearchRadiusMeters float64
}

// Load reads an optional .env file and then the process environment. Values
// already present in the environment win over the file.
func Load() Settings {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return Settings{
		MarketplacePort: getenv("MARKETPLACE_PORT", "8080"),
		GatewayPort:     getenv("GATEWAY_PORT", "8000"),
		MarketplaceURL:  getenv("MARKETPLACE_URL", "http://localhost:8080"),
		PublicBaseURL:   getenv("PUBLIC_BASE_URL", "http://localhost:8000"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBName:     getenv("DB_NAME", "foodmarket"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisHost: getenv("REDIS_HOST", "localhost"),
		RedisPort: getenv("REDIS_PORT", "6379"),

		KafkaBroker:        getenv("KAFKA_BROKER", "localhost:9092"),
		NotificationsTopic: getenv("NOTIFICATIONS_TOPIC", NotificationsTopic),
		NotifyGroupID:      getenv("NOTIFY_GROUP_ID", "notify-svc"),

		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3Region:        getenv("S3_REGION", "auto"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),

		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodeRegion:    getenv("GEOCODE_REGION", "za"),

		SMSGatewayURL:      os.Getenv("SMS_GATEWAY_URL"),
		SMSGatewayUser:     os.Getenv("SMS_GATEWAY_USER"),
		SMSGatewayPassword: os.Getenv("SMS_GATEWAY_PASSWORD"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		SearchRadiusMeters: getenvFloat("SEARCH_RADIUS_METERS", 25000),
	}
}

// Require returns an error naming the first empty value among keys.
func (s Settings) Require(keys ...string) error {
	values := map[string]string{
		"DB_PASSWORD":         s.DBPassword,
		"S3_ACCESS_KEY":       s.S3AccessKey,
		"S3_SECRET_KEY":       s.S3SecretKey,
		"S3_BUCKET":           s.S3Bucket,
		"S3_PUBLIC_BASE_URL":  s.S3PublicBaseURL,
		"GOOGLE_MAPS_API_KEY": s.GoogleMapsAPIKey,
		"SMS_GATEWAY_URL":     s.SMSGatewayURL,
		"JWT_SECRET":          s.JWTSecret,
	}
	for _, key := range keys {
		if values[key] == "" {
			return fmt.Errorf("missing env var: %s", key)
		}
	}
	return nil
}

func (s Settings) PostgresDSN() string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=" + s.DBSSLMode
}

func MustInitPostgres(s Settings) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisHost + ":" + s.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s Settings, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(s Settings, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(s.KafkaBroker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		log.Printf("[CONFIG] ignoring %s=%q: want a positive number", key, raw)
		return fallback
	}
	return value
}
