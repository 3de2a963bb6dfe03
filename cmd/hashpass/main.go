package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Produces a bcrypt hash for the given password, for seeding
// ADMIN_PASSWORD deployments manually.
func main() {
	// Load .env from project root
	_ = godotenv.Load("../.env")

	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) >= 2 {
		password = os.Args[1]
	}
	if password == "" {
		fmt.Println("Usage: go run main.go <password> (or set ADMIN_PASSWORD)")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		fmt.Printf("could not hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
