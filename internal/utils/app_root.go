package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppRoot is where .env files and a relative workspace file are looked up:
// the module root when the source tree is present, else the working
// directory of an installed binary.
var AppRoot = appRoot()

func appRoot() string {
	if _, file, _, ok := runtime.Caller(0); ok {
		root := filepath.Join(filepath.Dir(file), "..", "..")
		if Exists(filepath.Join(root, "go.mod")) {
			return root
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// PathFromRoot constructs a path relative to the application root
func PathFromRoot(relativePath string) string {
	return filepath.Join(AppRoot, relativePath)
}
