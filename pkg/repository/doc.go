// Package repository implements the record operations behind the menu.
//
// PersonRepository serves the architect, contractor and customer tables,
// which share one column layout. ProjectRepository creates, partially
// updates and deletes projects, checking that referenced people exist
// first. ProjectSearch runs the read-only project queries.
//
// Statements are built with utils.SQLBuilder for the provider's dialect.
// Missing rows are reported as *model.NotFoundError and dangling person ids
// as *model.ForeignKeyError, both before any write is issued.
package repository
