package service

import "golang.org/x/crypto/bcrypt"

// hashCost matches the work factor the original credential store was seeded
// with; changing it would invalidate the bootstrap hash comparison below.
const hashCost = 12

// defaultPassword is the well-known bootstrap password. It is only ever
// accepted when the stored hash itself verifies against it — never
// unconditionally.
const defaultPassword = "admin123"

// HashPassword produces a salted bcrypt hash suitable for storage.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyLoginPassword reports whether presented is acceptable for login
// against the stored hash. Besides the straight bcrypt comparison it keeps
// the legacy allowance for the bootstrap password: the literal default is
// accepted when the stored hash is still the default's hash.
func VerifyLoginPassword(storedHash, presented string) bool {
	return passwordMatches(storedHash, presented) || isDefaultFallback(storedHash, presented)
}

// VerifyCurrentPassword applies the same dual rule for the change-password
// flow, so an admin who never rotated the bootstrap password can still
// rotate it by typing the default.
func VerifyCurrentPassword(storedHash, presented string) bool {
	return passwordMatches(storedHash, presented) || isDefaultFallback(storedHash, presented)
}

func passwordMatches(storedHash, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(presented)) == nil
}

func isDefaultFallback(storedHash, presented string) bool {
	return presented == defaultPassword && passwordMatches(storedHash, defaultPassword)
}
