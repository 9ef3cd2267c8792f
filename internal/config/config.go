package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Superuser struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Phone    string `yaml:"phone"`
	} `yaml:"superuser"`

	Seed struct {
		CSVDir string `yaml:"csv_dir"` // каталог с csv-файлами справочников, опционально
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: при наличии DATABASE_URL берет всё из
// переменных окружения (режим теста/контейнера), иначе читает config.yaml.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyEnvOverrides(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	applyEnvOverrides(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		cfg.JWT.TTL, _ = strconv.Atoi(v)
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
	if v := os.Getenv("SU_EMAIL"); v != "" {
		cfg.Superuser.Email = v
	}
	if v := os.Getenv("SU_PASSWORD"); v != "" {
		cfg.Superuser.Password = v
	}
	if v := os.Getenv("SU_PHONE"); v != "" {
		cfg.Superuser.Phone = v
	}
	if v := os.Getenv("SEED_CSV_DIR"); v != "" {
		cfg.Seed.CSVDir = v
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
