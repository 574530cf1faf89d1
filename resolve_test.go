package logging

import (
	stderrs "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memLogDir = "/var/log/shell"

// writeSized creates path on fsys with exactly size bytes.
func writeSized(t *testing.T, fsys afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, make([]byte, size), logFilePerm))
}

func unifiedSettings(limit uint64) Settings {
	s := DefaultSettings()
	s.LogPath = memLogDir
	s.MaxFileSize = limit
	return s
}

// statFailFs reports a metadata failure for every Stat call.
type statFailFs struct {
	afero.Fs
}

func (statFailFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: stderrs.New("input/output error")}
}

func TestResolver_Unified(t *testing.T) {
	t.Run("empty directory picks app_1", func(t *testing.T) {
		r := Resolver{Fs: afero.NewMemMapFs()}
		path, err := r.Resolve(unifiedSettings(100))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app_1.log"), path)
	})

	t.Run("all full picks the next number", func(t *testing.T) {
		for _, k := range []int{1, 2, 5} {
			fsys := afero.NewMemMapFs()
			for i := 1; i <= k; i++ {
				writeSized(t, fsys, filepath.Join(memLogDir, fmt.Sprintf("app_%d.log", i)), 100+i)
			}
			path, err := Resolver{Fs: fsys}.Resolve(unifiedSettings(100))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(memLogDir, fmt.Sprintf("app_%d.log", k+1)), path)
		}
	})

	t.Run("file exactly at the limit is full", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeSized(t, fsys, filepath.Join(memLogDir, "app_1.log"), 100)
		path, err := Resolver{Fs: fsys}.Resolve(unifiedSettings(100))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app_2.log"), path)
	})

	t.Run("first fit wins over later files", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeSized(t, fsys, filepath.Join(memLogDir, "app_1.log"), 10)
		writeSized(t, fsys, filepath.Join(memLogDir, "app_2.log"), 1)
		path, err := Resolver{Fs: fsys}.Resolve(unifiedSettings(100))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app_1.log"), path)
	})

	t.Run("gap in numbering is reused", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeSized(t, fsys, filepath.Join(memLogDir, "app_1.log"), 200)
		writeSized(t, fsys, filepath.Join(memLogDir, "app_3.log"), 1)
		path, err := Resolver{Fs: fsys}.Resolve(unifiedSettings(100))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app_2.log"), path)
	})

	t.Run("zero limit treats every existing file as full", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		writeSized(t, fsys, filepath.Join(memLogDir, "app_1.log"), 0)
		path, err := Resolver{Fs: fsys}.Resolve(unifiedSettings(0))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app_2.log"), path)
	})

	t.Run("metadata failure is an io error", func(t *testing.T) {
		r := Resolver{Fs: statFailFs{Fs: afero.NewMemMapFs()}}
		_, err := r.Resolve(unifiedSettings(100))
		require.Error(t, err)
		assert.True(t, HasKind(err, ErrIO))
		assert.False(t, HasKind(err, ErrDirectory))
	})
}

func TestResolver_Session(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 5, 7, 0, time.Local)
	r := Resolver{Fs: afero.NewMemMapFs(), Now: func() time.Time { return now }}

	s := DefaultSettings()
	s.LogPath = memLogDir
	s.LogType = Value(LogTypeSession)

	path, err := r.Resolve(s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(memLogDir, "session_2026-10-16_09-05-07.log"), path)

	t.Run("wall clock name", func(t *testing.T) {
		path, err := Resolver{Fs: afero.NewMemMapFs()}.Resolve(s)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`session_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.log$`), path)
	})
}

func TestResolver_Fallback(t *testing.T) {
	for _, logType := range []string{"", "rolling", "Session"} {
		s := DefaultSettings()
		s.LogPath = memLogDir
		s.LogType = Value(logType)
		path, err := Resolver{Fs: afero.NewMemMapFs()}.Resolve(s)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(memLogDir, "app.log"), path, "log type %q", logType)
	}
}

func TestResolver_Directory(t *testing.T) {
	t.Run("explicit directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "logs")
		s := DefaultSettings()
		s.LogPath = dir

		path, err := Resolver{}.Resolve(s)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "app_1.log"), path)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("relative directory becomes absolute", func(t *testing.T) {
		s := DefaultSettings()
		s.LogPath = "logs"
		path, err := Resolver{Fs: afero.NewMemMapFs()}.Resolve(s)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))
	})

	t.Run("default directory collaborator", func(t *testing.T) {
		called := 0
		r := Resolver{
			Fs: afero.NewMemMapFs(),
			Directory: func() (string, error) {
				called++
				return "/home/op/.local/share/shell/logs", nil
			},
		}
		path, err := r.Resolve(DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, 1, called)
		assert.Equal(t, "/home/op/.local/share/shell/logs/app_1.log", filepath.ToSlash(path))
	})

	t.Run("collaborator failure", func(t *testing.T) {
		r := Resolver{
			Fs:        afero.NewMemMapFs(),
			Directory: func() (string, error) { return "", stderrs.New("no home directory") },
		}
		_, err := r.Resolve(DefaultSettings())
		require.Error(t, err)
		assert.True(t, HasKind(err, ErrDirectory))
	})

	t.Run("creation failure", func(t *testing.T) {
		r := Resolver{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs())}
		_, err := r.Resolve(unifiedSettings(100))
		require.Error(t, err)
		assert.True(t, HasKind(err, ErrDirectory))
	})
}
