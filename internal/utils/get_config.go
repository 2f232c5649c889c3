package utils

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort   string `yaml:"APP_PORT"`
	AppURL    string `yaml:"APP_URL"`
	RateLimit int    `yaml:"RATE_LIMIT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Redis and Kafka
	RedisAddr    string `yaml:"REDIS_ADDR"`
	KafkaBrokers string `yaml:"KAFKA_BROKERS"`
}

var config Config

// LoadConfig reads config.yaml, then .env, then lets the process environment override.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

func LoadConfigFrom(path string) {
	config = Config{
		AppPort:   "8080",
		RateLimit: 10,
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	// .env is optional
	_ = godotenv.Load()

	for _, key := range configKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			SetConfig(key, v)
		}
	}
}

var configKeys = []string{
	"APP_PORT", "APP_URL", "RATE_LIMIT",
	"DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST",
	"JWT_SECRET",
	"SMTP_HOST", "SMTP_PORT", "SMTP_SENDER_NAME", "SMTP_AUTH_EMAIL", "SMTP_AUTH_PASSWORD",
	"CLIENT_KEY", "SERVER_KEY", "IsProd",
	"AWS_S3_BUCKET", "AWS_S3_REGION", "AWS_ACCESS_KEY", "AWS_SECRET_KEY",
	"REDIS_ADDR", "KAFKA_BROKERS",
}

func SetConfig(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "APP_URL":
		config.AppURL = value
	case "RATE_LIMIT":
		if n, err := strconv.Atoi(value); err == nil {
			config.RateLimit = n
		}
	case "DB_USER":
		config.DBUser = value
	case "DB_NAME":
		config.DBName = value
	case "DB_PASSWORD":
		config.DBPassword = value
	case "DB_PORT":
		config.DBPort = value
	case "DB_HOST":
		config.DBHost = value
	case "JWT_SECRET":
		config.JWTSecret = value
	case "SMTP_HOST":
		config.SMTPHost = value
	case "SMTP_PORT":
		config.SMTPPort = value
	case "SMTP_SENDER_NAME":
		config.SMTPSenderName = value
	case "SMTP_AUTH_EMAIL":
		config.SMTPAuthEmail = value
	case "SMTP_AUTH_PASSWORD":
		config.SMTPAuthPassword = value
	case "CLIENT_KEY":
		config.ClientKey = value
	case "SERVER_KEY":
		config.ServerKey = value
	case "IsProd":
		config.IsProd = value == "true"
	case "AWS_S3_BUCKET":
		config.AWSS3Bucket = value
	case "AWS_S3_REGION":
		config.AWSS3Region = value
	case "AWS_ACCESS_KEY":
		config.AWSAccessKey = value
	case "AWS_SECRET_KEY":
		config.AWSSecretKey = value
	case "REDIS_ADDR":
		config.RedisAddr = value
	case "KAFKA_BROKERS":
		config.KafkaBrokers = value
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "RATE_LIMIT":
		return strconv.Itoa(config.RateLimit)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		if config.IsProd {
			return "true"
		}
		return "false"
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "REDIS_ADDR":
		return config.RedisAddr
	case "KAFKA_BROKERS":
		return config.KafkaBrokers
	default:
		return ""
	}
}

// GetConfigList splits a comma separated value, dropping blanks.
func GetConfigList(key string) []string {
	parts := strings.Split(GetConfig(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
