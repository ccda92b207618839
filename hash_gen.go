package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Small helper to produce a bcrypt hash for seeding or resetting a user
// password by hand. Usage: go run hash_gen.go [password]
func main() {
	password := "admin123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// UPDATE users SET password_hash = '<hash>' WHERE username = 'admin';
