package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorLocked = Error("another process holds the lock")
)

// repository errors
const (
	ErrNotFound      = Error("record not found")
	ErrDuplicateName = Error("name already exists")
)

// parser errors
const ErrInvalidNumber = Error("invalid number")
