package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config selects the warehouse connection target and run parameters.
// Values come from an optional YAML file and from environment variables;
// environment values override the file, and CLI flags override both.
// The SNOWFLAKE_* names are kept because Snowflake is the primary backend
// and operators already export them.
type Config struct {
	Type string `yaml:"type" env:"SCHEMASCAN_TYPE" env-default:"snowflake"`

	// Common connection fields
	Host     string `yaml:"host" env:"SCHEMASCAN_HOST"`
	Port     int    `yaml:"port" env:"SCHEMASCAN_PORT"`
	User     string `yaml:"user" env:"SNOWFLAKE_USER"`
	Password string `yaml:"password" env:"SNOWFLAKE_PASSWORD"`
	Database string `yaml:"database" env:"SNOWFLAKE_DATABASE"`
	Schema   string `yaml:"schema" env:"SNOWFLAKE_SCHEMA"`

	// Snowflake specific
	Account   string `yaml:"account" env:"SNOWFLAKE_ACCOUNT"`
	Warehouse string `yaml:"warehouse" env:"SNOWFLAKE_WAREHOUSE"`
	Role      string `yaml:"role" env:"SNOWFLAKE_ROLE"`

	// BigQuery specific
	ProjectID       string `yaml:"project_id" env:"SCHEMASCAN_PROJECT_ID"`
	Location        string `yaml:"location" env:"SCHEMASCAN_LOCATION"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Databricks specific
	Workspace string `yaml:"workspace" env:"DATABRICKS_HOST"`
	Token     string `yaml:"token" env:"DATABRICKS_TOKEN"`
	Catalog   string `yaml:"catalog" env:"DATABRICKS_CATALOG"`

	// Run parameters
	SampleSize int    `yaml:"sample_size" env:"SCHEMASCAN_SAMPLE_SIZE" env-default:"5"`
	Output     string `yaml:"output" env:"SCHEMASCAN_OUTPUT" env-default:"schema_analysis.csv"`
	Format     string `yaml:"format" env:"SCHEMASCAN_FORMAT" env-default:"csv"`
}

// Load reads the YAML file at path (when given) and the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %v", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %v", err)
	}
	return &cfg, nil
}

// Validate checks that the fields the selected backend needs are present.
func (c *Config) Validate() error {
	switch c.Type {
	case "snowflake":
		if c.Account == "" || c.User == "" || c.Password == "" ||
			c.Warehouse == "" || c.Database == "" || c.Schema == "" {
			return fmt.Errorf("account, user, password, warehouse, database and schema are required for Snowflake")
		}
	case "postgres", "mssql":
		if c.Host == "" || c.Port == 0 || c.User == "" || c.Password == "" ||
			c.Database == "" || c.Schema == "" {
			return fmt.Errorf("host, port, user, password, database and schema are required for %s", c.Type)
		}
	case "mysql":
		if c.Host == "" || c.Port == 0 || c.User == "" || c.Password == "" || c.Database == "" {
			return fmt.Errorf("host, port, user, password and database are required for MySQL")
		}
	case "bigquery":
		if c.ProjectID == "" || c.Schema == "" {
			return fmt.Errorf("project ID and schema (dataset) are required for BigQuery")
		}
	case "databricks":
		if c.Workspace == "" || c.Token == "" || c.Catalog == "" || c.Schema == "" {
			return fmt.Errorf("workspace, token, catalog and schema are required for Databricks")
		}
	case "duckdb", "sqlite":
		if c.Database == "" {
			return fmt.Errorf("database file path is required for %s", c.Type)
		}
	default:
		return fmt.Errorf("unsupported warehouse type: %s", c.Type)
	}

	if c.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative")
	}
	switch c.Format {
	case "csv", "xlsx", "parquet":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	if c.Output == "" {
		return fmt.Errorf("output file path is required")
	}
	return nil
}
