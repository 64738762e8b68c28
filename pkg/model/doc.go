// Package model defines the PoisePMS records, the closed set of tables that
// hold them, and the pure functions that turn operator input into typed
// values.
//
// Nothing in this package touches the database. Parsing is strict: blank
// required fields, unparseable amounts, dates, booleans and ids are reported
// as *ValidationError and never coerced into a default.
//
//	fields, err := model.ParseNewProject(model.ProjectInput{
//		BuildingType: "Medical",
//		Address:      "2 Elm St",
//		ErfNumber:    "123456",
//		TotalFee:     "100000.00",
//		PaidToDate:   "25000.00",
//		Deadline:     "2025-01-01",
//		Finalised:    "false",
//		ArchitectID:  "1",
//		ContractorID: "2",
//		CustomerID:   "3",
//	})
//
// A partial update is described by a ProjectPatch, where a nil field is left
// unchanged. Assignments lists the supplied columns in ProjectColumns order
// and is what the repository turns into the SET clause.
//
// The error types (ValidationError, ForeignKeyError, NotFoundError and
// DatabaseError) are shared by the repository and menu packages.
package model
