package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf reports a startup failure on stderr and exits with status 1.
func Exitf(format string, args ...any) {
	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	fmt.Fprintf(stderr, "hoaxify: %s\n", message)
	exit(1)
}
