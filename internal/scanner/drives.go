// filepath: internal/scanner/drives.go
// Package scanner enumerates mounted drives and the video files stored on them.
package scanner

import (
	"os"
	"path/filepath"

	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"
)

// ScanDrives lists the mount points directly under each root. Roots that do not
// exist are skipped; a failure on one entry never aborts the scan.
// The result is never nil.
func ScanDrives(roots []string, opts ...Option) []models.DriveInfo {
	o := newOptions(opts)
	drives := make([]models.DriveInfo, 0)
	for _, root := range roots {
		drives = append(drives, scanRoot(root, o)...)
	}
	return drives
}

func scanRoot(root string, o *options) []models.DriveInfo {
	drives := make([]models.DriveInfo, 0)

	if _, err := os.Stat(root); err != nil {
		if !os.IsNotExist(err) {
			logging.Log.WithFields(logrus.Fields{"root": root}).Errorf("Error scanning drives: %v", err)
			o.report(err)
		}
		return drives
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		logging.Log.WithFields(logrus.Fields{"root": root}).Errorf("Error scanning drives: %v", err)
		o.report(err)
		return drives
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		mounted, err := isMountPoint(path)
		if err != nil {
			logging.Log.WithFields(logrus.Fields{"path": path}).Warnf("Could not inspect drive: %v", err)
			o.report(err)
			continue
		}
		if !mounted {
			continue
		}

		usage, err := disk.Usage(path)
		if err != nil {
			logging.Log.WithFields(logrus.Fields{"path": path}).Warnf("Could not read drive usage: %v", err)
			o.report(err)
			continue
		}

		drives = append(drives, models.DriveInfo{
			Name:       entry.Name(),
			Path:       path,
			TotalSpace: usage.Total,
			FreeSpace:  usage.Free,
		})
	}
	return drives
}
