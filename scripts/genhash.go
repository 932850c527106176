// One-off: go run scripts/genhash.go [-cost 12] [-user admin] [password]
// Prints an INSERT for an admin account to seed a fresh database.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost, must match BCRYPT_COST or be lower")
	user := flag.String("user", "admin", "admin username")
	email := flag.String("email", "admin@jobly.local", "admin email")
	flag.Parse()

	password := "admin"
	if flag.NArg() > 0 {
		password = flag.Arg(0)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("INSERT INTO users (username, password, first_name, last_name, email, is_admin)\n"+
		"VALUES (%s, %s, 'Admin', 'User', %s, TRUE);\n", quote(*user), quote(string(h)), quote(*email))
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
