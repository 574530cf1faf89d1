package logging

import (
	"io"
	"os"

	smerrors "github.com/Station-Manager/errors"
	"github.com/mattn/go-colorable"
	"github.com/spf13/afero"
)

func (s *Service) initializeConsoleSink(level Level) *lineSink {
	out := s.Console
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	return newLineSink(out, level, true)
}

// initializeFileSink opens path for appending. The handle stays open for the
// life of the process; rotation only happens at the next start.
func (s *Service) initializeFileSink(path string, level Level) (*lineSink, io.Closer, error) {
	const op smerrors.Op = "logging.Service.initializeFileSink"

	f, err := s.fs().OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, nil, smerrors.New(op).Err(kindError(ErrIO, err)).Msg(errMsgLogFileOpen)
	}
	return newLineSink(f, level, false), f, nil
}

func (s *Service) fs() afero.Fs {
	if s.Fs == nil {
		return afero.NewOsFs()
	}
	return s.Fs
}

func (s *Service) resolver() Resolver {
	return Resolver{Fs: s.fs(), Directory: s.Directory, Now: s.Clock}
}
