package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type LedgerConfig struct {
	Env           string `yaml:"env"`
	LedgerDB      `yaml:"ledger_db"`
	RateProvider  `yaml:"rate_provider"`
	RateCache     `yaml:"rate_cache"`
	MetricsServer `yaml:"metrics_server"`
	KafkaService  `yaml:"kafka-service"`
	LogConfig     `yaml:"log_config"`
}

type LedgerDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type RateProvider struct {
	BaseURL      string        `yaml:"base_url"`
	BaseCurrency string        `yaml:"base_currency"`
	Timeout      time.Duration `yaml:"timeout"`
}

type RateCache struct {
	TTL             time.Duration `yaml:"ttl"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	SweepInterval   time.Duration `yaml:"sweep_interval"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *LedgerConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LEDGER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LEDGER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LedgerConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
