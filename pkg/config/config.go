package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/consts"
	"gopkg.in/yaml.v3"
)

// DotEnvFile is loaded into the process environment (without overriding
// variables that are already set) before environment overrides are applied.
const DotEnvFile = ".env"

// Drivers lists the supported database drivers.
var Drivers = []string{"postgres", "mysql", "sqlite"}

type (
	// Database holds the connection settings for the record store.
	//
	// Host, Port, User, Password, Name and SSLMode apply to the server based
	// drivers (postgres and mysql). Path applies to sqlite only.
	Database struct {
		// Driver selects the SQL dialect: postgres, mysql or sqlite
		Driver string `yaml:"driver"`

		Host     string `yaml:"host,omitempty"`
		Port     int    `yaml:"port,omitempty"`
		User     string `yaml:"user,omitempty"`
		Password string `yaml:"password,omitempty"`

		// Name is the database (schema) name on the server
		Name string `yaml:"name,omitempty"`

		// Path is the database file used by the sqlite driver
		Path string `yaml:"path,omitempty"`

		// SSLMode is passed through to PostgreSQL as sslmode
		SSLMode string `yaml:"sslmode,omitempty"`
	}

	// Log controls the zap logger.
	Log struct {
		// Level is any zap level name: debug, info, warn, error
		Level string `yaml:"level"`

		// Format is either console or json
		Format string `yaml:"format"`
	}

	// Config represents the poise configuration file.
	Config struct {
		Database Database `yaml:"database"`
		Log      Log      `yaml:"log"`
	}
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// ForDriver returns the defaults for driver, which is matched case
// insensitively.
func ForDriver(driver string) (*Config, error) {
	cfg := &Config{Database: Database{Driver: driver}}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing values are
// filled in from the defaults in the consts package, and an empty document is
// equivalent to Default().
//
// Example:
//
//	yamlData := `
//	database:
//	  driver: mysql
//	  host: db.internal
//	  user: poise
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Database.Port) // 3306
func LoadConfig(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("poise.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Load resolves the configuration the way the poise binary does:
//
//  1. the YAML file at path, or $POISE_CONFIG, or ./poise.yaml. A missing
//     file is not an error and yields the defaults.
//  2. variables from ./.env, if that file exists.
//  3. POISE_DB_* and POISE_LOG_* environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(consts.ConfigEnvVar)
	}
	if path == "" {
		path = consts.ConfigFile
	}

	// Defaults depend on the final driver, so they are applied last.
	cfg := &Config{}
	f, err := os.Open(path)
	switch {
	case err == nil:
		cfg, err = decode(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to load %s", DotEnvFile)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables named
// POISE_DB_<FIELD> and POISE_LOG_<FIELD>. lookup is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DB_DRIVER":   &c.Database.Driver,
		"DB_HOST":     &c.Database.Host,
		"DB_USER":     &c.Database.User,
		"DB_PASSWORD": &c.Database.Password,
		"DB_NAME":     &c.Database.Name,
		"DB_PATH":     &c.Database.Path,
		"DB_SSLMODE":  &c.Database.SSLMode,
		"LOG_LEVEL":   &c.Log.Level,
		"LOG_FORMAT":  &c.Log.Format,
	}

	for key, dst := range strs {
		if v, ok := lookup(envName(key)); ok {
			*dst = v
		}
	}

	if v, ok := lookup(envName("DB_PORT")); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", envName("DB_PORT"))
		}
		c.Database.Port = port
	}

	return nil
}

// Validate reports configuration values that can never work.
func (c *Config) Validate() error {
	supported := false
	for _, d := range Drivers {
		if c.Database.Driver == d {
			supported = true
			break
		}
	}
	if !supported {
		return errors.Errorf("unsupported database driver %q (expected one of %s)",
			c.Database.Driver, strings.Join(Drivers, ", "))
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return errors.Errorf("unsupported log format %q (expected console or json)", c.Log.Format)
	}

	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return errors.Errorf("invalid database port %d", c.Database.Port)
	}

	return nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	return errors.Wrap(enc.Close(), "failed to encode config")
}

func (c *Config) applyDefaults() {
	db := &c.Database
	if db.Driver == "" {
		db.Driver = consts.DefaultDriver
	}
	db.Driver = strings.ToLower(db.Driver)

	if db.Driver == "sqlite" {
		if db.Path == "" {
			db.Path = consts.DefaultSQLitePath
		}
	} else {
		if db.Host == "" {
			db.Host = consts.DefaultHost
		}
		if db.Port == 0 {
			db.Port = consts.DefaultPorts[db.Driver]
		}
		if db.Name == "" {
			db.Name = consts.DefaultDatabase
		}
	}

	if db.Driver == "postgres" && db.SSLMode == "" {
		db.SSLMode = consts.DefaultSSLMode
	}

	if c.Log.Level == "" {
		c.Log.Level = consts.DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = consts.DefaultLogFormat
	}
}

func decode(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

func envName(key string) string {
	return consts.EnvPrefix + "_" + key
}
