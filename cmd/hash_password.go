package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"lounge-pos/internal/pkg/password"
)

// hashPassword prints the bcrypt hash for ADMIN_PASSWORD_HASH. The password
// comes from args or, when absent, the first line of in.
func hashPassword(args []string, in io.Reader, out io.Writer) error {
	var plain string
	if len(args) > 0 {
		plain = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read password: %w", err)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	hash, err := password.HashPassword(plain, password.DefaultCost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
