package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"METRICS_ADDR" env-default:":9090"`
}

type Session struct {
	Path string `yaml:"path" env:"SESSION_PATH" env-default:"session.json"`
}

type Config struct {
	Env      string     `yaml:"env" env:"ENV" env-default:"local"`
	SkipSeed bool       `yaml:"skip_seed" env:"SKIP_SEED" env-default:"false"`
	Metrics  HTTPServer `yaml:"metrics"`
	Session  Session    `yaml:"session"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}
