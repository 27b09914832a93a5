package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the booking-engine policy knobs.
//
// UnknownClassPolicy decides what the fare calculator does with a travel
// class outside the known four: "default" prices it at the base fare
// (observed behavior of the legacy system), "reject" fails the booking.
type BookingConfig struct {
	UnknownClassPolicy string
	PNRMaxAttempts     int
	SeatsPerCoach      int
}

const (
	UnknownClassDefault = "default"
	UnknownClassReject  = "reject"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_UNKNOWN_CLASS_POLICY", UnknownClassDefault)
	viper.SetDefault("BOOKING_PNR_MAX_ATTEMPTS", 5)
	viper.SetDefault("BOOKING_SEATS_PER_COACH", 72)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			UnknownClassPolicy: viper.GetString("BOOKING_UNKNOWN_CLASS_POLICY"),
			PNRMaxAttempts:     viper.GetInt("BOOKING_PNR_MAX_ATTEMPTS"),
			SeatsPerCoach:      viper.GetInt("BOOKING_SEATS_PER_COACH"),
		},
	}

	return config, nil
}
