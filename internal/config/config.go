package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Storage  StorageConfig
	Cnab     CnabConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type StorageConfig struct {
	BasePath string
}

// CnabConfig holds the originating-company data stamped into remittance files.
type CnabConfig struct {
	CompanyCode    string
	CompanyName    string
	CompanyCNPJ    string
	Agency         string
	Account        string
	AccountDigit   string
	SequenceNumber int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto_gennesis"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
	}

	cnabSequence, err := strconv.Atoi(getEnv("CNAB_SEQUENCE_NUMBER", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid CNAB_SEQUENCE_NUMBER: %w", err)
	}

	config.Cnab = CnabConfig{
		CompanyCode:    getEnv("CNAB_COMPANY_CODE", ""),
		CompanyName:    getEnv("CNAB_COMPANY_NAME", ""),
		CompanyCNPJ:    getEnv("CNAB_COMPANY_CNPJ", ""),
		Agency:         getEnv("CNAB_AGENCY", ""),
		Account:        getEnv("CNAB_ACCOUNT", ""),
		AccountDigit:   getEnv("CNAB_ACCOUNT_DIGIT", ""),
		SequenceNumber: cnabSequence,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Cnab.CompanyCode == "" {
		return fmt.Errorf("CNAB_COMPANY_CODE is required")
	}
	if c.Cnab.CompanyName == "" {
		return fmt.Errorf("CNAB_COMPANY_NAME is required")
	}
	if c.Cnab.CompanyCNPJ == "" {
		return fmt.Errorf("CNAB_COMPANY_CNPJ is required")
	}
	if !validator.IsValidCNPJ(c.Cnab.CompanyCNPJ) {
		return fmt.Errorf("CNAB_COMPANY_CNPJ is not a valid CNPJ")
	}
	if c.Cnab.Agency == "" || c.Cnab.Account == "" {
		return fmt.Errorf("CNAB_AGENCY and CNAB_ACCOUNT are required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
