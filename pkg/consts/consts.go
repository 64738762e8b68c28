package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default name of the poise configuration file
	ConfigFile = "poise.yaml"

	// ConfigEnvVar names the environment variable that overrides the config file path
	ConfigEnvVar = "POISE_CONFIG"

	// EnvPrefix is prepended to every environment override (POISE_DB_HOST, POISE_LOG_LEVEL, ...)
	EnvPrefix = "POISE"

	// DefaultDriver is the database driver used when none is configured
	DefaultDriver = "postgres"

	// DefaultHost is the database host used when none is configured
	DefaultHost = "localhost"

	// DefaultDatabase is the database name used when none is configured
	DefaultDatabase = "PoisePMS"

	// DefaultSSLMode is the PostgreSQL sslmode used when none is configured
	DefaultSSLMode = "disable"

	// DefaultSQLitePath is the database file used by the sqlite driver when no path is configured
	DefaultSQLitePath = "poise.db"

	// DefaultLogLevel is the zap level used when none is configured
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the zap encoding used when none is configured
	DefaultLogFormat = "console"

	// DefaultPostgresVersion is the image tag used by the development container
	DefaultPostgresVersion = "16-alpine"

	// DefaultExportFile is the workbook written by the export action when no path is given
	DefaultExportFile = "projects.xlsx"

	// DateLayout is the only accepted calendar date format (YYYY-MM-DD)
	DateLayout = "2006-01-02"
)

// DefaultPorts maps each supported driver to its conventional server port.
var DefaultPorts = map[string]int{
	"postgres": 5432,
	"mysql":    3306,
}
