// filepath: internal/scanner/videos.go
package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"

	"github.com/sirupsen/logrus"
)

// videoExtensions is the allow-list of recognised video file extensions (lowercase).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
}

var errNotDirectory = errors.New("not a directory")

// IsVideoFile reports whether name carries a recognised video extension, ignoring case.
func IsVideoFile(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

// TitleFromFilename strips the final extension from a filename.
func TitleFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ScanVideoFiles walks root recursively and returns every video file found.
// Symlinked directories are not descended, so the walk never leaves root. A
// symlinked file is listed with its target's size when the target is a regular file.
//
// Failures are logged and never returned: a missing or unreadable root yields an
// empty slice, an unreadable subdirectory or dangling file link is skipped, and a
// file whose size cannot be read stops the walk with whatever was collected so far.
// The result is never nil.
func ScanVideoFiles(root string, opts ...Option) []models.ScannedFile {
	o := newOptions(opts)
	files := make([]models.ScannedFile, 0)
	log := logging.Log.WithFields(logrus.Fields{"root": root})

	root, err := resolveRoot(root)
	if err != nil {
		log.Errorf("Error scanning for movies: %v", err)
		o.report(err)
		return files
	}
	info, err := os.Stat(root)
	if err != nil {
		log.Errorf("Error scanning for movies: %v", err)
		o.report(err)
		return files
	}
	if !info.IsDir() {
		log.Error("Error scanning for movies: not a directory")
		o.report(errNotDirectory)
		return files
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.WithFields(logrus.Fields{"path": path}).Warnf("Skipping unreadable directory: %v", err)
			o.report(err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsVideoFile(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.Mode()&fs.ModeSymlink != 0 {
			if fi, err = os.Stat(path); err != nil {
				log.WithFields(logrus.Fields{"path": path}).Warnf("Skipping broken link: %v", err)
				o.report(err)
				return nil
			}
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		files = append(files, models.ScannedFile{
			Filename: d.Name(),
			Path:     path,
			Size:     fi.Size(),
			Title:    TitleFromFilename(d.Name()),
		})
		return nil
	})
	if err != nil && !errors.Is(err, filepath.SkipAll) {
		log.Errorf("Error scanning for movies: %v", err)
		o.report(err)
	}
	return files
}

// resolveRoot makes root absolute and resolves a symlinked root to its target.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
