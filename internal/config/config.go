package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Durations store settings
	DurationsFile string
	StoreBackend  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Splits        int
	Group         int
	Algorithm     string
	DurationsPath string
	TestsFile     string
	ReportPath    string
	OutputPath    string
	Limit         int
	Interactive   bool
	JSON          bool
	Backend       string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:   DefaultProjectPath,
		DurationsFile: DefaultDurationsFile,
		StoreBackend:  DefaultStoreBackend,
		Flags: Flags{
			Algorithm: DefaultAlgorithm,
			Backend:   DefaultStoreBackend,
			Limit:     DefaultSlowestLimit,
		},
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.Backend != "" {
		cfg.StoreBackend = flags.Backend
	}

	return cfg
}

// GetDurationsPath returns the full path to the durations file.
// Resolves to an absolute path so every subcommand reads/writes the same
// file regardless of cwd.
func (c *Config) GetDurationsPath() string {
	p := c.Flags.DurationsPath
	if p == "" {
		p = filepath.Join(c.ProjectPath, c.DurationsFile)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ValidateSplits checks the requested group count.
func (c *Config) ValidateSplits() error {
	if c.Flags.Splits < 1 {
		return fmt.Errorf("--splits must be >= 1, got %d", c.Flags.Splits)
	}
	return nil
}

// ValidateSplit checks the splits/group pair before any partitioning work
// happens; failures here are fatal configuration errors.
func (c *Config) ValidateSplit() error {
	if err := c.ValidateSplits(); err != nil {
		return err
	}
	if c.Flags.Group < 1 || c.Flags.Group > c.Flags.Splits {
		return fmt.Errorf("--group must be >= 1 and <= %d, got %d", c.Flags.Splits, c.Flags.Group)
	}
	return nil
}

// GetDatabaseDSN returns the MySQL DSN for the shared durations store,
// built from the environment. A .env file in the project directory is
// loaded first when present.
func (c *Config) GetDatabaseDSN() string {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	host := os.Getenv("TSPLIT_DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("TSPLIT_DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("TSPLIT_DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("TSPLIT_DB_PASSWORD")
	name := os.Getenv("TSPLIT_DB_DATABASE")
	if name == "" {
		name = "tsplit"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, name)
}
