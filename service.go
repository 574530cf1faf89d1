package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"go.uber.org/atomic"
)

// Service owns the process logging state: a one-way initialized flag guarded
// by mu, and the dispatcher committed when that flag flips. Neither is ever
// reset. Use Default for the process-wide instance.
type Service struct {
	// Directory resolves the log directory when Settings.LogPath is empty.
	// Defaults to DefaultLogDir.
	Directory DirResolver
	// Console receives the console sink's output. Defaults to a colorable stdout.
	Console io.Writer
	// Fs is the file system logs are resolved and written on. Defaults to the OS.
	Fs afero.Fs
	// Clock stamps session file names. Defaults to time.Now.
	Clock func() time.Time

	global bool
	// beforeCommit runs inside the critical section right before the commit.
	beforeCommit func()

	mu          sync.Mutex
	poisoned    bool
	initialized atomic.Bool
	dispatcher  atomic.Pointer[zerolog.Logger]
	logPath     atomic.String
	file        io.Closer
}

var std = &Service{global: true}

// Default returns the process-wide service. Its dispatcher is also published
// as zerolog's global log.Logger once committed, and zerolog's global level is
// lowered to Trace. log.Logger is a plain variable: initialize before other
// goroutines start logging through github.com/rs/zerolog/log.
func Default() *Service {
	return std
}

// NewService returns an independent service, mainly for embedding and tests.
// It leaves zerolog's globals alone, so trace records only reach its sinks
// when zerolog's global level allows them.
func NewService() *Service {
	return &Service{}
}

// Initialize resolves the log file, builds the console and file sinks and
// commits them as the service's dispatcher. Only the first successful call
// has any effect; later calls return nil without touching the sinks.
func (s *Service) Initialize(settings Settings) error {
	const op smerrors.Op = "logging.Service.Initialize"
	if s == nil {
		return smerrors.New(op).Msg(errMsgNilService)
	}

	dir, committed, err := s.configure(settings)
	if err != nil || !committed {
		return err
	}

	// The lock is released by now; the announcement goes through the new dispatcher.
	if logger := s.dispatcher.Load(); logger != nil {
		logger.Info().Str(TargetFieldName, initTarget).Msgf("Logger initialized. Log directory: %q", dir)
	}
	return nil
}

func (s *Service) configure(settings Settings) (dir string, committed bool, err error) {
	const op smerrors.Op = "logging.Service.configure"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return emptyString, false, smerrors.New(op).Err(ErrLockPoisoned).Msg(errMsgLockPoisoned)
	}
	if s.initialized.Load() {
		return emptyString, false, nil
	}

	var closer io.Closer
	defer func() {
		if closer != nil && !committed {
			_ = closer.Close()
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			dir, committed = emptyString, false
			err = smerrors.New(op).Err(kindError(ErrLockPoisoned, fmt.Errorf("%v", r))).Msg(errMsgLockPoisoned)
		}
	}()

	if err = validateSettings(settings); err != nil {
		return emptyString, false, err
	}

	var path string
	if path, err = s.resolver().Resolve(settings); err != nil {
		return emptyString, false, err
	}

	console := s.initializeConsoleSink(ParseLevel(settings.consoleLevel()))
	var file *lineSink
	if file, closer, err = s.initializeFileSink(path, ParseLevel(settings.fileLevel())); err != nil {
		return emptyString, false, err
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, file)).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()

	if s.beforeCommit != nil {
		s.beforeCommit()
	}
	if err = s.commit(&logger); err != nil {
		return emptyString, false, err
	}

	s.file = closer
	s.logPath.Store(path)
	s.initialized.Store(true)
	return filepath.Dir(path), true, nil
}

// Install commits an externally built dispatcher. It does not mark the
// service initialized, so a later Initialize fails with ErrDispatch.
func (s *Service) Install(logger zerolog.Logger) error {
	const op smerrors.Op = "logging.Service.Install"
	if s == nil {
		return smerrors.New(op).Msg(errMsgNilService)
	}
	return s.commit(&logger)
}

// commit is irreversible: the dispatcher slot only ever goes from nil to set.
func (s *Service) commit(logger *zerolog.Logger) error {
	const op smerrors.Op = "logging.Service.commit"

	if !s.dispatcher.CompareAndSwap(nil, logger) {
		return smerrors.New(op).Err(ErrDispatch).Msg(errMsgDispatchSet)
	}
	if s.global {
		// Trace records are also gated by zerolog's global level.
		if zerolog.GlobalLevel() > zerolog.TraceLevel {
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		}
		log.Logger = *logger
	}
	return nil
}

// Submit forwards one message to the dispatcher. It never fails and never
// waits on initialization: before a dispatcher is committed the call is
// dropped. Unknown level names, and "off", are logged at Info. An empty
// location is tagged DefaultTarget.
func (s *Service) Submit(level, message, location string) {
	if s == nil {
		return
	}
	logger := s.dispatcher.Load()
	if logger == nil {
		return
	}

	lvl := ParseLevel(level)
	if lvl == OffLevel {
		lvl = InfoLevel
	}
	target := location
	if target == emptyString {
		target = DefaultTarget
	}
	logger.WithLevel(lvl.Zerolog()).Str(TargetFieldName, target).Msg(message)
}

// SetConsole replaces the console stream used by the next Initialize. It
// reports false, and changes nothing, once the service is initialized.
func (s *Service) SetConsole(w io.Writer) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized.Load() {
		return false
	}
	s.Console = w
	return true
}

// IsInitialized reports whether Initialize has committed a dispatcher.
func (s *Service) IsInitialized() bool {
	return s != nil && s.initialized.Load()
}

// LogPath returns the file the file sink writes to, or "" before initialization.
func (s *Service) LogPath() string {
	if s == nil {
		return emptyString
	}
	return s.logPath.Load()
}
