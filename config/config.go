package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	TracingConfig TracingConfig
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("TRACING_COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "4000"
	}

	if conf.MetricsPort == "" {
		conf.MetricsPort = "4001"
	}

	return &conf
}
