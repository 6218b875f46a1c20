package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendFirebase  = "firebase"
	BackendPostgres  = "postgres"
	BackendS3        = "s3"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Firebase   FirebaseConfig
	S3         S3Config
	Redis      RedisConfig
	NATS       NATSConfig
	Submission SubmissionConfig
	App        AppConfig
}

type ServerConfig struct {
	Port               string
	PublicURL          string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	MaxUploadBytes     int64
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	StorageBucket   string
}

type S3Config struct {
	Bucket        string
	Region        string
	PublicBaseURL string
}

type RedisConfig struct {
	URL string
}

type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

type SubmissionConfig struct {
	RecordBackend string
	FileBackend   string
	ResetDelay    time.Duration
	CallTimeout   time.Duration
}

type AppConfig struct {
	Environment     string
	LogLevel        string
	Version         string
	SummarySchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			PublicURL:          getEnv("PUBLIC_URL", "http://localhost:8080"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 1),
			RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 5),
			MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_BYTES", 64<<20)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "engineers_planet"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		},
		S3: S3Config{
			Bucket:        getEnv("S3_BUCKET", ""),
			Region:        getEnv("S3_REGION", "eu-south-1"),
			PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "leads"),
		},
		Submission: SubmissionConfig{
			RecordBackend: getEnv("RECORD_BACKEND", BackendMemory),
			FileBackend:   getEnv("FILE_BACKEND", BackendMemory),
			ResetDelay:    getEnvAsDuration("SUBMISSION_RESET_DELAY", 3*time.Second),
			CallTimeout:   getEnvAsDuration("BACKEND_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
			SummarySchedule: getEnv("SUMMARY_SCHEDULE", "0 0 0 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Submission.RecordBackend {
	case BackendMemory:
	case BackendFirestore:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required for RECORD_BACKEND=firestore")
		}
	case BackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for RECORD_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unsupported RECORD_BACKEND %q", c.Submission.RecordBackend)
	}

	switch c.Submission.FileBackend {
	case BackendMemory:
	case BackendFirebase:
		if c.Firebase.CredentialsPath == "" || c.Firebase.StorageBucket == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH and FIREBASE_STORAGE_BUCKET are required for FILE_BACKEND=firebase")
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for FILE_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unsupported FILE_BACKEND %q", c.Submission.FileBackend)
	}

	if c.App.Environment == "production" &&
		(c.Submission.RecordBackend == BackendMemory || c.Submission.FileBackend == BackendMemory) {
		return fmt.Errorf("RECORD_BACKEND and FILE_BACKEND must not be %q in production", BackendMemory)
	}

	if c.Submission.ResetDelay <= 0 {
		return fmt.Errorf("SUBMISSION_RESET_DELAY must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
