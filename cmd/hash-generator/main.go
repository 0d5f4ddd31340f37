// Command hash-generator prints bcrypt hashes for seeding test accounts.
//
// Usage:
//
//	hash-generator [-cost N] password...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", 12, "bcrypt work factor")
	check := fs.Bool("check", false, "report password strength violations")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: hash-generator [-cost N] [-check] password...")
		return 2
	}

	hasher := auth.NewBcryptHasher(*cost)
	v := validation.New()
	status := 0

	for _, password := range fs.Args() {
		if *check {
			for _, violation := range v.PasswordStrength(password) {
				fmt.Fprintf(stderr, "warning: %s\n", violation)
			}
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(stderr, "error generating hash: %v\n", err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "%s\n", hash)
	}

	return status
}
