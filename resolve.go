package logging

import (
	stderrs "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	smerrors "github.com/Station-Manager/errors"
	"github.com/spf13/afero"
)

// Resolver turns Settings into the absolute path of the file to log to.
// The zero value uses the OS file system, DefaultLogDir and the wall clock.
type Resolver struct {
	Fs        afero.Fs
	Directory DirResolver
	Now       func() time.Time
}

// Resolve computes a fresh log file path for settings, creating the log
// directory if needed. It never caches: every call scans again.
func (r Resolver) Resolve(settings Settings) (string, error) {
	const op smerrors.Op = "logging.Resolver.Resolve"

	dir, err := r.baseDir(settings)
	if err != nil {
		return emptyString, err
	}

	switch settings.logType() {
	case LogTypeSession:
		name := sessionFilePrefix + r.now().Format(sessionTimeLayout) + logFileExt
		return filepath.Join(dir, name), nil
	case LogTypeUnified:
		path, err := unifiedLogFile(r.fs(), dir, settings.MaxFileSize)
		if err != nil {
			return emptyString, smerrors.New(op).Err(err).Msg(errMsgLogFileStat)
		}
		return path, nil
	default:
		return filepath.Join(dir, fallbackFileName), nil
	}
}

func (r Resolver) baseDir(settings Settings) (string, error) {
	const op smerrors.Op = "logging.Resolver.baseDir"

	dir := settings.LogPath
	if dir == emptyString {
		resolve := r.Directory
		if resolve == nil {
			resolve = DefaultLogDir
		}
		var err error
		if dir, err = resolve(); err != nil {
			return emptyString, smerrors.New(op).Err(kindError(ErrDirectory, err)).Msg(errMsgLogDirUnresolved)
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return emptyString, smerrors.New(op).Err(kindError(ErrDirectory, err)).Msg(errMsgLogDirCreate)
	}
	if err = r.fs().MkdirAll(abs, logDirPerm); err != nil {
		return emptyString, smerrors.New(op).Err(kindError(ErrDirectory, err)).Msg(errMsgLogDirCreate)
	}
	return abs, nil
}

// unifiedLogFile returns the first app_<i>.log, i >= 1, that is missing or
// strictly smaller than maxSize. The scan has no upper bound on i.
func unifiedLogFile(fsys afero.Fs, dir string, maxSize uint64) (string, error) {
	for i := 1; ; i++ {
		path := filepath.Join(dir, fmt.Sprintf(unifiedFileFormat, i))
		info, err := fsys.Stat(path)
		if stderrs.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return emptyString, kindError(ErrIO, err)
		}
		if info.Size() >= 0 && uint64(info.Size()) < maxSize {
			return path, nil
		}
	}
}

func (r Resolver) fs() afero.Fs {
	if r.Fs == nil {
		return afero.NewOsFs()
	}
	return r.Fs
}

func (r Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
