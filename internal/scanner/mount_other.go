//go:build !unix

package scanner

import "os"

// isMountPoint treats every directory as a drive where device ids are not available.
func isMountPoint(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
