package utils

import "os"

func IsSudo() bool {
	return os.Geteuid() == 0
}
