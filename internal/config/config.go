package config

import (
	"errors"
	"log"
	"sync"

	"github.com/spf13/viper"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	ServerPort     string
	Environment    string
	DBPath         string
	JWTSecret      string
	JWTExpiryHours int
	AllowedOrigins []string
}

const (
	defaultServerPort     = "8080"
	defaultEnvironment    = "development"
	defaultDBPath         = "data/fleet_inventory.db"
	defaultJWTSecret      = "fleet" // override in production, see warning below
	defaultJWTExpiryHours = 24
)

// LoadConfig loads configuration from a .env file and environment
// variables. It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		viper.SetConfigFile(".env")
		viper.AddConfigPath(".")
		viper.AutomaticEnv()

		viper.SetDefault("SERVER_PORT", defaultServerPort)
		viper.SetDefault("ENVIRONMENT", defaultEnvironment)
		viper.SetDefault("SQLITE_DB_PATH", defaultDBPath)
		viper.SetDefault("JWT_EXPIRY_HOURS", defaultJWTExpiryHours)
		viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Printf("Warning: could not read config file: %v. Falling back to environment variables only.", err)
			}
		}

		jwtSecret := viper.GetString("JWT_SECRET_KEY")
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Println("Warning: JWT_SECRET_KEY is not set. Using the default JWT secret; set this variable in production.")
		}

		AppConfig = Configuration{
			ServerPort:     viper.GetString("SERVER_PORT"),
			Environment:    viper.GetString("ENVIRONMENT"),
			DBPath:         viper.GetString("SQLITE_DB_PATH"),
			JWTSecret:      jwtSecret,
			JWTExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		}

		log.Println("Application configuration loaded.")
	})
}
