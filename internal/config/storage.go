package config

const (
	BackendCSV      = "csv"
	BackendPostgres = "postgres"
)

const defaultExpensesFile = "expenses.csv"

type StorageConfig struct {
	BackendName string         `yaml:"backend"`
	FileName    string         `yaml:"file"`
	Pg          PostgresConfig `yaml:"postgres"`
}

func defaultStorageConfig() StorageConfig {
	return StorageConfig{
		BackendName: BackendCSV,
		FileName:    defaultExpensesFile,
	}
}

func (s *StorageConfig) Backend() string {
	if s.BackendName == "" {
		return BackendCSV
	}
	return s.BackendName
}

func (s *StorageConfig) File() string {
	if s.FileName == "" {
		return defaultExpensesFile
	}
	return s.FileName
}

// SetFile overrides the expenses file, e.g. from a command-line flag.
func (s *StorageConfig) SetFile(name string) {
	s.FileName = name
}

func (s *StorageConfig) Postgres() *PostgresConfig {
	return &s.Pg
}

type PostgresConfig struct {
	HostName string `yaml:"host"`
	DbName   string `yaml:"db"`
	UserName string `yaml:"username"`
	UserPswd string `yaml:"password"`
}

func (p *PostgresConfig) Host() string {
	return p.HostName
}

func (p *PostgresConfig) Database() string {
	return p.DbName
}

func (p *PostgresConfig) Username() string {
	return p.UserName
}

func (p *PostgresConfig) Password() string {
	return p.UserPswd
}
