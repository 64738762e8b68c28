// Package format renders poise records as single text lines.
//
// Every record is printed on one line as a sequence of "Label: value" pairs
// joined by a separator, which is how the menu and the list command show
// architects, contractors, customers and projects.
//
// Usage:
//
//	f := format.New(format.Defaults)
//	fmt.Println(f.Person(architect))
//	// ID: 1 | First Name: Jane | Last Name: Doe | ...
//
//	// Write a whole listing
//	err := f.Projects(os.Stdout, projects...)
//
// Amounts are printed with two decimal places and a project without a
// completion date shows FormatterOptions.NullText in that position.
package format
