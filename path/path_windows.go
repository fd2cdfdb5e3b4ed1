//go:build windows
// +build windows

package path

import (
	"os"
	"path/filepath"
)

func GetDefaultConfigDirPath() string {
	return filepath.Join(os.Getenv("ProgramData"), "course-details-server")
}

func GetDefaultDbDirPath() string {
	return filepath.Join(os.Getenv("ProgramData"), "course-details-server", "db")
}
