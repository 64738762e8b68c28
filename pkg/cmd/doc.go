// Package cmd implements the poise command line interface.
//
// Every subcommand is provided to the fx "commands" group by Module and
// assembled into a single urfave/cli application by Run:
//
//   - menu: the interactive console (the default command)
//   - init: write a poise.yaml with the defaults for a driver
//   - schema dump|apply: print or create the four tables
//   - list: print the records of one table
//   - export: write every project to an Excel workbook
//   - dev: run the menu against a disposable PostgreSQL container
//
// Commands receive their dependencies (config, logger, database provider and
// repositories) from fx, so each one can be exercised in tests by calling its
// constructor with fixtures.
package cmd
