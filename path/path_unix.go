//go:build !windows
// +build !windows

package path

func GetDefaultConfigDirPath() string {
	return "/etc/course-details-server/"
}

func GetDefaultDbDirPath() string {
	return "/var/cache/course-details-server/db"
}
