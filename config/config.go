package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &Settings)
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	log.Println("✅ App settings loaded from", path)
}

type HistorySettings struct {
	Enabled bool `yaml:"Enabled"`
}

type AppSettings struct {
	Source    string          `yaml:"source"` // "opensheet" or "static"
	SheetID   string          `yaml:"sheetId"`
	TabName   string          `yaml:"tabName"`
	Fallback  []string        `yaml:"fallback"`
	Instance  string          `yaml:"instance"`
	Debug     bool            `yaml:"debug"`
	Listen    string          `yaml:"listen"`
	History   HistorySettings `yaml:"History"`
	Streaming StreamingConfig `yaml:"Streaming"`

	Database struct {
		Provider         string `yaml:"provider"`
		ConnectionString string `yaml:"connectionString"`
	} `yaml:"database"`
}

type StreamingConfig struct {
	Enabled  bool   `yaml:"Enabled"`
	Provider string `yaml:"Provider"`

	Redis struct {
		Address  string `yaml:"Address"`
		Password string `yaml:"Password"`
		DB       int    `yaml:"DB"`
		Stream   string `yaml:"Stream"`
	} `yaml:"Redis"`

	Kafka struct {
		Brokers []string `yaml:"Brokers"`
		Topic   string   `yaml:"Topic"`
	} `yaml:"Kafka"`
}

var Settings AppSettings
