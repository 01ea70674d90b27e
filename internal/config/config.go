package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Game holds the tunable progression and economy parameters. Defaults match
// the shipped config.ini values.
type Game struct {
	BaseXP          int           `validate:"gte=1"`
	XPMultiplier    float64       `validate:"gt=1"`
	LevelCoinReward int           `validate:"gte=0"`
	MaxStamina      int           `validate:"gte=1"`
	StaminaInterval time.Duration `validate:"gt=0"`
	SweepInterval   time.Duration `validate:"gt=0"`
	MessageXPChance float64       `validate:"gte=0,lte=1"`
	MessageXPMin    int           `validate:"gte=0"`
	MessageXPMax    int           `validate:"gtefield=MessageXPMin"`
	ItemDropChance  float64       `validate:"gte=0,lte=1"`
	CurrencyIcon    string
}

// Config holds the application configuration
type Config struct {
	LogLevel   string
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`
	HTTPPort   int    `validate:"gte=1,lte=65535"`

	DiscordToken string
	DiscordAppID string
	// DiscordAnnounceChannel is where dungeon results and level-ups are
	// announced. Announcements are disabled when empty.
	DiscordAnnounceChannel string

	Game Game
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "dungeonbot"),
		DiscordToken:           os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:           os.Getenv("DISCORD_APP_ID"),
		DiscordAnnounceChannel: os.Getenv("DISCORD_ANNOUNCE_CHANNEL"),
	}

	var err error
	if cfg.HTTPPort, err = getEnvInt("HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	game := Game{
		CurrencyIcon: getEnv("CURRENCY_ICON", "🪙"),
	}
	if game.BaseXP, err = getEnvInt("BASE_XP", 100); err != nil {
		return nil, err
	}
	if game.XPMultiplier, err = getEnvFloat("XP_MULTIPLIER", 1.5); err != nil {
		return nil, err
	}
	if game.LevelCoinReward, err = getEnvInt("LEVEL_COIN_REWARD", 50); err != nil {
		return nil, err
	}
	if game.MaxStamina, err = getEnvInt("MAX_STAMINA", 5); err != nil {
		return nil, err
	}
	if game.MessageXPChance, err = getEnvFloat("MESSAGE_XP_CHANCE", 0.3); err != nil {
		return nil, err
	}
	if game.MessageXPMin, err = getEnvInt("MESSAGE_XP_MIN", 5); err != nil {
		return nil, err
	}
	if game.MessageXPMax, err = getEnvInt("MESSAGE_XP_MAX", 15); err != nil {
		return nil, err
	}
	if game.ItemDropChance, err = getEnvFloat("ITEM_DROP_CHANCE", 0.1); err != nil {
		return nil, err
	}

	staminaMinutes, err := getEnvInt("STAMINA_REGEN_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	game.StaminaInterval = time.Duration(staminaMinutes) * time.Minute

	sweepSeconds, err := getEnvInt("SWEEP_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	game.SweepInterval = time.Duration(sweepSeconds) * time.Second

	cfg.Game = game

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := v.Struct(&cfg.Game); err != nil {
		return fmt.Errorf("invalid game configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
