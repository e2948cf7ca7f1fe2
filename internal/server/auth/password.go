package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; bcrypt salts every digest itself, so equal passwords
// still produce distinct hashes.
const bcryptCost = 10

// HashPassword derives a one-way digest of a raw password. The raw value
// must never be persisted or logged.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored digest.
// bcrypt performs the comparison in constant time.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
