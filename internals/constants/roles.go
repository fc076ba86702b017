package constants

import "fmt"

// Role patron perpustakaan
const (
	RoleStudent    = "student"
	RoleFaculty    = "faculty"
	RoleNonFaculty = "non-faculty"
)

// Jenis & status transaksi sirkulasi
const (
	TransactionBorrow = "borrow"
	TransactionReturn = "return"

	TransactionPending = "pending"
	TransactionDone    = "done"
)

// Template pesan error
const (
	ErrNotFoundTemplate = "%s not found"
	ErrFailedTemplate   = "Failed to %s"
)

func NotFound(entity string) string {
	return fmt.Sprintf(ErrNotFoundTemplate, entity)
}

func Failed(action string) string {
	return fmt.Sprintf(ErrFailedTemplate, action)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	PatronRoles = []string{
		RoleStudent,
		RoleFaculty,
		RoleNonFaculty,
	}

	TransactionTypes = []string{
		TransactionBorrow,
		TransactionReturn,
	}
)

func IsPatronRole(role string) bool {
	for _, r := range PatronRoles {
		if r == role {
			return true
		}
	}
	return false
}
