//go:build unix

package scanner

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// isMountPoint reports whether path is a directory that sits on a different
// device than its parent, or is the same inode as its parent (a filesystem root).
func isMountPoint(path string) (bool, error) {
	var self unix.Stat_t
	if err := unix.Lstat(path, &self); err != nil {
		return false, err
	}
	if self.Mode&unix.S_IFMT != unix.S_IFDIR {
		return false, nil
	}

	var parent unix.Stat_t
	if err := unix.Stat(filepath.Join(path, ".."), &parent); err != nil {
		return false, err
	}

	if self.Dev != parent.Dev {
		return true, nil
	}
	return self.Ino == parent.Ino, nil
}
