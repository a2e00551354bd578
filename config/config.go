package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Driver       string
	Path         string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxIdleConns int
	MaxOpenConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// ClinicConfig holds the domain lists shared by validation and form rendering.
type ClinicConfig struct {
	Specialties []string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSpecialties is the specialty list offered when CLINIC_SPECIALTIES is unset.
var DefaultSpecialties = []string{
	"Alergología", "Anestesiología", "Cardiología", "Cirugía General", "Cirugía Plástica",
	"Dermatología", "Endocrinología", "Gastroenterología", "Geriatría", "Ginecología",
	"Hematología", "Infectología", "Medicina Interna", "Medicina General", "Nefrología",
	"Neumología", "Neurología", "Nutriología", "Obstetricia", "Oftalmología", "Oncología",
	"Ortopedia", "Otorrinolaringología", "Pediatría", "Psiquiatría", "Radiología",
	"Reumatología", "Traumatología", "Urología", "Medicina del Deporte", "Medicina Familiar",
	"Terapia Física", "Rehabilitación", "Urgencias Médicas",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "database/healthtrack.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", "5m")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("REDIS_TTL"))
	if err != nil {
		ttl = 5 * time.Minute
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Driver:       driver,
			Path:         v.GetString("DB_PATH"),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      ttl,
		},
		Clinic: ClinicConfig{
			Specialties: parseList(v.GetString("CLINIC_SPECIALTIES"), DefaultSpecialties),
		},
	}

	return config, nil
}

func parseList(raw string, fallback []string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), fallback...)
	}
	return items
}

// RedisEnabled reports whether a Redis host is configured.
func (c RedisConfig) RedisEnabled() bool {
	return c.Host != ""
}

// PostgresDSN builds the key/value DSN used by the gorm postgres driver.
func (c DBConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}

// MigrateURL builds the URL understood by the golang-migrate pgx/v5 driver.
func (c DBConfig) MigrateURL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.Name)
}
