package utils

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
var HashCost = 14

func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), HashCost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
