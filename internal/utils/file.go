package utils

import (
	"os"
)

// Exists reports whether file can be stat'ed; permission errors count as absent.
func Exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}
