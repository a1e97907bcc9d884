// filepath: internal/scanner/scanner_test.go
package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"moviecatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func titles(files []models.ScannedFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Title)
	}
	sort.Strings(out)
	return out
}

func TestScanVideoFiles_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "movie.MP4"), 10)
	writeFile(t, filepath.Join(root, "notes.txt"), 3)
	writeFile(t, filepath.Join(root, "nested", "clip.mkv"), 25)

	files := ScanVideoFiles(root)
	require.Len(t, files, 2)
	assert.Equal(t, []string{"clip", "movie"}, titles(files))

	for _, f := range files {
		assert.True(t, filepath.IsAbs(f.Path))
		assert.Equal(t, f.Filename, filepath.Base(f.Path))
		switch f.Filename {
		case "movie.MP4":
			assert.Equal(t, int64(10), f.Size)
		case "clip.mkv":
			assert.Equal(t, int64(25), f.Size)
		default:
			t.Errorf("unexpected file %s", f.Filename)
		}
	}
}

func TestScanVideoFiles_AllExtensions(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.mp4", "b.AVI", "c.mkv", "d.Mov", "e.wmv", "f.flv", "g.webm", "h.M4V", "i.mpg", "j.srt"} {
		writeFile(t, filepath.Join(root, name), 1)
	}
	assert.Len(t, ScanVideoFiles(root), 8)
}

func TestScanVideoFiles_TitleKeepsInnerDots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Dona.Flor.1976.avi"), 1)

	files := ScanVideoFiles(root)
	require.Len(t, files, 1)
	assert.Equal(t, "Dona.Flor.1976", files[0].Title)
}

func TestScanVideoFiles_Empty(t *testing.T) {
	files := ScanVideoFiles(t.TempDir())
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestScanVideoFiles_MissingRoot(t *testing.T) {
	files := ScanVideoFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestScanVideoFiles_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie.mp4")
	writeFile(t, path, 1)
	assert.Empty(t, ScanVideoFiles(path))
}

func TestScanVideoFiles_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok.mkv"), 1)
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden.mkv"), 1)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	files := ScanVideoFiles(root)
	assert.Equal(t, []string{"ok"}, titles(files))
}

func TestScanVideoFiles_DoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "escape.mkv"), 1)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "inside.mkv"), 1)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	assert.Equal(t, []string{"inside"}, titles(ScanVideoFiles(root)))
}

func TestScanVideoFiles_SymlinkedFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	store := t.TempDir()
	writeFile(t, filepath.Join(store, "target.mkv"), 42)

	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(store, "target.mkv"), filepath.Join(root, "linked.mkv")))
	require.NoError(t, os.Symlink(filepath.Join(store, "gone.mkv"), filepath.Join(root, "broken.mkv")))
	require.NoError(t, os.Symlink(store, filepath.Join(root, "folder.mkv")))

	var failures []error
	files := ScanVideoFiles(root, WithErrorHandler(func(err error) { failures = append(failures, err) }))

	require.Len(t, files, 1)
	assert.Equal(t, "linked.mkv", files[0].Filename)
	assert.Equal(t, int64(42), files[0].Size)
	assert.Len(t, failures, 1, "the dangling link is reported")
}

func TestScanVideoFiles_ReportsFailures(t *testing.T) {
	var failures []error
	handler := WithErrorHandler(func(err error) { failures = append(failures, err) })

	ScanVideoFiles(filepath.Join(t.TempDir(), "does-not-exist"), handler)
	assert.Len(t, failures, 1)

	ScanVideoFiles(t.TempDir(), handler)
	assert.Len(t, failures, 1, "a clean scan reports nothing")
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("x.MKV"))
	assert.True(t, IsVideoFile("x.webm"))
	assert.False(t, IsVideoFile("x.mkv.part"))
	assert.False(t, IsVideoFile("mkv"))
}

func TestScanDrives_PlainDirectoriesAreNotDrives(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "not-a-mount"), 0o755))
	writeFile(t, filepath.Join(root, "file"), 1)

	drives := ScanDrives([]string{root})
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func TestScanDrives_MissingRoots(t *testing.T) {
	drives := ScanDrives([]string{filepath.Join(t.TempDir(), "media"), filepath.Join(t.TempDir(), "mnt")})
	assert.NotNil(t, drives)
	assert.Empty(t, drives)

	assert.NotNil(t, ScanDrives(nil))
}

func TestScanDrives_MissingRootIsNotAFailure(t *testing.T) {
	called := false
	ScanDrives([]string{filepath.Join(t.TempDir(), "media")}, WithErrorHandler(func(error) { called = true }))
	assert.False(t, called)
}

func TestIsMountPoint_FilesystemRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix only")
	}
	mounted, err := isMountPoint("/")
	require.NoError(t, err)
	assert.True(t, mounted)
}
