package logging

const (
	// ServiceName is the DI/service locator name for the shell logging service.
	ServiceName = "shell-logging"
	emptyString = ""
)

const (
	// LogTypeSession writes one fresh, timestamped file per process run.
	LogTypeSession = "session"
	// LogTypeUnified appends to the first numbered file below the size limit.
	LogTypeUnified = "unified"

	// DefaultTarget tags records submitted without a location.
	DefaultTarget = "frontend"
	// TargetFieldName is the record field carrying the origin tag.
	TargetFieldName = "target"
)

const (
	defaultMaxFileSize   = 5 * 1024 * 1024
	sessionFilePrefix    = "session_"
	sessionTimeLayout    = "2006-01-02_15-04-05"
	unifiedFileFormat    = "app_%d.log"
	fallbackFileName     = "app.log"
	logFileExt           = ".log"
	recordTimeLayout     = "2006-01-02 15:04:05"
	initTarget           = "shell_logging"
	fallbackRecordTarget = "app"
	logDirPerm           = 0o755
	logFilePerm          = 0o644
)

// noisyTargets are windowing-runtime targets that only ever reach a sink at Error.
var noisyTargets = []string{"tao", "wry"}

const (
	errMsgNilService       = "Logger service is nil."
	errMsgConfigInvalid    = "Logging configuration is invalid."
	errMsgLogDirUnresolved = "Failed to resolve the default log directory."
	errMsgLogDirCreate     = "Failed to create the log directory."
	errMsgLogFileStat      = "Failed to read log file metadata."
	errMsgLogFileOpen      = "Failed to open the log file."
	errMsgDispatchSet      = "A log dispatcher is already installed."
	errMsgLockPoisoned     = "Logger initialization lock is poisoned."
	errMsgUnknownCommand   = "Unknown command."
	errMsgBadPayload       = "Command payload is invalid."
)
