package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
}

type RabbitMQ struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type App struct {
	Database Database `yaml:"database"`
	RabbitMQ RabbitMQ `yaml:"rabbitmq"`
}

// Load reads the YAML config at path, filling defaults and checking the
// fields every mode needs.
func Load(path string) (App, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return App{}, fmt.Errorf("read config: %w", err)
	}

	a := App{
		Database: Database{Port: 5432, SSLMode: "disable", MaxConns: 10},
		RabbitMQ: RabbitMQ{Port: 5672, VHost: "/"},
	}
	if err := yaml.Unmarshal(b, &a); err != nil {
		return App{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if a.Database.Host == "" || a.Database.User == "" || a.Database.Database == "" {
		return App{}, fmt.Errorf("config %s: database section incomplete", path)
	}
	if a.RabbitMQ.Host == "" || a.RabbitMQ.User == "" {
		return App{}, fmt.Errorf("config %s: rabbitmq section incomplete", path)
	}
	return a, nil
}
