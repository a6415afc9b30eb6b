// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against the stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks the password against the minimum length
	// policy enforced at setup.
	ValidatePasswordStrength(password string) error
}
