// Package docker runs a disposable PostgreSQL server for poise.
//
// The container backs the `poise dev` command, which starts a fresh
// database, applies the schema and opens the menu against it, and the
// PostgreSQL integration tests. It is built on testcontainers-go's postgres
// module, so the container is labelled, waited on until it accepts
// connections and reaped when the process exits.
//
//	container := docker.New()
//	if err := container.Start(ctx); err != nil {
//		return err
//	}
//	defer func() { _ = container.Stop(context.Background()) }()
//
//	dbCfg, err := container.Config(ctx)
//	if err != nil {
//		return err
//	}
//
//	provider, err := database.Open(dbCfg, logger)
package docker
