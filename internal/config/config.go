package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "data/config.yaml"

const expensesFileEnvKey = "EXPENSES_FILE"

type config struct {
	Storage StorageConfig `yaml:"storage"`
}

type Service struct {
	config config
}

// New loads the configuration from path, or from the default location when
// path is empty. A missing default file is not an error: defaults apply.
// Environment values (optionally from a .env file) override the file.
func New(path string) (*Service, error) {
	_ = godotenv.Load()

	s := &Service{config: config{Storage: defaultStorageConfig()}}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			s.applyEnv()
			return s, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	return s, nil
}

func (s *Service) applyEnv() {
	if file := os.Getenv(expensesFileEnvKey); file != "" {
		s.config.Storage.FileName = file
	}
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}
