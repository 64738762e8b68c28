package model

type (
	// PersonDetails holds the free-text fields shared by architects,
	// contractors and customers. None of them are validated for format.
	PersonDetails struct {
		FirstName   string
		LastName    string
		PhoneNumber string
		Email       string
		Address     string
		PostCode    string
	}

	// Person is a stored architect, contractor or customer.
	Person struct {
		ID int64
		PersonDetails
	}
)

// PersonColumns lists the writable person columns in statement order.
var PersonColumns = []string{
	"first_name",
	"last_name",
	"phone_number",
	"email",
	"address",
	"post_code",
}

// Values returns the field values in PersonColumns order.
func (d PersonDetails) Values() []any {
	return []any{d.FirstName, d.LastName, d.PhoneNumber, d.Email, d.Address, d.PostCode}
}
