package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the existing collections were hashed
// with; changing it only affects newly stored hashes, verification reads
// the cost from each hash.
const bcryptCost = 6

// HashPassword returns a salted one-way hash of plain. Two calls with the
// same input produce different hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
