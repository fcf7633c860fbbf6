package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	MongoURI      string
	MongoDatabase string

	OpenAIAPIKey   string
	ChatModel      string
	EmbeddingModel string
	MaxTokens      int
	Temperature    float32

	JWTSecret         string
	JWTExpiryDuration time.Duration
	SessionCookieName string

	BankURL          string
	KnowledgeBaseRU  string
	KnowledgeBaseKK  string
	ReferenceTimeZone string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Missing OPENAI_API_KEY or MONGO_URI is a hard error: the
// process must not serve traffic without its remote collaborators.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "zaman_bank")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("CHAT_MODEL", "gpt-4o-mini")
	viper.SetDefault("EMBEDDING_MODEL", "text-embedding-3-small")
	viper.SetDefault("CHAT_MAX_TOKENS", 600)
	viper.SetDefault("CHAT_TEMPERATURE", 0.7)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-for-sessions")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("BANK_URL", "https://www.zamanbank.kz/")
	viper.SetDefault("KNOWLEDGE_BASE_RU", "vector_database.json")
	viper.SetDefault("KNOWLEDGE_BASE_KK", "vector_database_kk.json")
	viper.SetDefault("REFERENCE_TIMEZONE", "Asia/Almaty")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	cfg.MongoURI = viper.GetString("MONGO_URI")
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MongoDatabase = viper.GetString("MONGO_DATABASE")
	cfg.ChatModel = viper.GetString("CHAT_MODEL")
	cfg.EmbeddingModel = viper.GetString("EMBEDDING_MODEL")
	cfg.MaxTokens = viper.GetInt("CHAT_MAX_TOKENS")
	cfg.Temperature = float32(viper.GetFloat64("CHAT_TEMPERATURE"))
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.BankURL = viper.GetString("BANK_URL")
	cfg.KnowledgeBaseRU = viper.GetString("KNOWLEDGE_BASE_RU")
	cfg.KnowledgeBaseKK = viper.GetString("KNOWLEDGE_BASE_KK")
	cfg.ReferenceTimeZone = viper.GetString("REFERENCE_TIMEZONE")

	return cfg, nil
}
