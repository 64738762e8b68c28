package docker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/consts"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	// DefaultPostgresPort is the port PostgreSQL listens on inside the container
	DefaultPostgresPort = "5432/tcp"

	defaultUser     = "poise"
	defaultPassword = "poise"
)

type (
	// DockerOptions represents options for running PostgreSQL in Docker
	DockerOptions struct {
		// Version is the postgres image tag (default: consts.DefaultPostgresVersion)
		Version string

		// Database is the database created on startup (default: consts.DefaultDatabase)
		Database string

		// User and Password are the superuser credentials (default: poise/poise)
		User     string
		Password string
	}

	// Container manages a disposable PostgreSQL container used by `poise dev`
	// and the integration tests.
	Container struct {
		options   DockerOptions
		container *postgres.PostgresContainer
	}
)

// New creates a new Docker container with default options
//
// Example:
//
//	container := docker.New()
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
func New() *Container {
	return NewWithOptions(DockerOptions{})
}

// NewWithOptions creates a new Docker container with custom options. Empty
// fields take their defaults.
//
// Example:
//
//	container := docker.NewWithOptions(docker.DockerOptions{Version: "15-alpine"})
func NewWithOptions(opts DockerOptions) *Container {
	if opts.Version == "" {
		opts.Version = consts.DefaultPostgresVersion
	}
	if opts.Database == "" {
		opts.Database = consts.DefaultDatabase
	}
	if opts.User == "" {
		opts.User = defaultUser
	}
	if opts.Password == "" {
		opts.Password = defaultPassword
	}

	return &Container{options: opts}
}

// Options returns the options the container was created with, defaults applied.
func (c *Container) Options() DockerOptions {
	return c.options
}

// Image returns the image reference that Start runs.
func (c *Container) Image() string {
	return fmt.Sprintf("postgres:%s", c.options.Version)
}

// Start starts the PostgreSQL container and waits until it accepts connections.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	container, err := postgres.Run(ctx,
		c.Image(),
		postgres.WithDatabase(c.options.Database),
		postgres.WithUsername(c.options.User),
		postgres.WithPassword(c.options.Password),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"app": "poise"}),
	)
	if err != nil {
		if container != nil {
			_ = container.Terminate(context.WithoutCancel(ctx))
		}
		return errors.Wrap(err, "failed to start PostgreSQL container")
	}

	c.container = container
	return nil
}

// Stop stops and removes the PostgreSQL container
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil // Already stopped
	}

	err := c.container.Terminate(ctx, testcontainers.StopTimeout(10*time.Second))
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop PostgreSQL container")
	}

	return nil
}

// Config returns database settings pointing at the running container.
func (c *Container) Config(ctx context.Context) (config.Database, error) {
	if c.container == nil {
		return config.Database{}, errors.New("container is not running")
	}

	host, err := c.container.Host(ctx)
	if err != nil {
		return config.Database{}, errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(ctx, DefaultPostgresPort)
	if err != nil {
		return config.Database{}, errors.Wrap(err, "failed to get container port")
	}

	n, err := strconv.Atoi(port.Port())
	if err != nil {
		return config.Database{}, errors.Wrapf(err, "invalid mapped port %q", port.Port())
	}

	return config.Database{
		Driver:   "postgres",
		Host:     host,
		Port:     n,
		User:     c.options.User,
		Password: c.options.Password,
		Name:     c.options.Database,
		SSLMode:  consts.DefaultSSLMode,
	}, nil
}

// GetDSN returns the DSN for connecting to the container
func (c *Container) GetDSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx, "sslmode="+consts.DefaultSSLMode)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// IsRunning returns true if the container is currently running
func (c *Container) IsRunning() bool {
	return c.container != nil
}
