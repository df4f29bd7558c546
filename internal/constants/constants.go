package constants

// Audit log action names.
const (
	Create = "CREATE"
	Update = "UPDATE"
	Borrow = "BORROW"
	Return = "RETURN"
)
