package config

import (
	"errors"
	"os"

	"framecast/internal/infrastructure/broker"
	"framecast/internal/infrastructure/database"
	"framecast/internal/infrastructure/devices"
	"framecast/internal/infrastructure/minio"
	"framecast/internal/infrastructure/picker"
	"framecast/internal/infrastructure/vision"
	"framecast/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOFetcher    minio.FetcherConfig    `yaml:"minio_fetcher"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Picker          picker.Config          `yaml:"picker"`
	Vision          vision.Config          `yaml:"vision"`
	DeviceRegistry  devices.Config         `yaml:"device_registry"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Vision.APIKey = os.Getenv("GEMINI_API_KEY")
	config.Picker.AccessToken = os.Getenv("PICKER_ACCESS_TOKEN")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Picker.BaseURL == "" {
		return errors.New("picker base_url is required")
	}
	if c.MinIOUploader.Bucket == "" {
		return errors.New("minio bucket is required")
	}

	return nil
}
