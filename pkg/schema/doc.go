// Package schema holds the DDL for the four PoisePMS tables.
//
// One script is embedded per SQL dialect (postgres, mysql and sqlite). Every
// statement is CREATE TABLE IF NOT EXISTS, so Apply can be run against a
// database that already holds some or all of the tables.
//
// Tables:
//   - architect, contractor, customer: id plus six text columns
//   - projects: project_number, descriptive fields, money, dates, the
//     finalised flag and the three person ids
//
// Foreign keys are not declared in the DDL. The repositories verify that the
// referenced ids exist before writing a project.
//
// Example:
//
//	// print the MySQL script
//	if err := schema.Dump(os.Stdout, "mysql"); err != nil {
//		log.Fatal(err)
//	}
//
//	// create missing tables
//	if err := schema.Apply(ctx, provider, logger); err != nil {
//		log.Fatal(err)
//	}
package schema
