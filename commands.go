package logging

import (
	"fmt"

	smerrors "github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// Command names the UI invokes.
const (
	CmdInitLogger = "init_logger_cmd"
	CmdLogMessage = "log_frontend_message"
)

// InitLogger initializes the process-wide logger. Any failure comes back as a
// single flattened message; repeated calls succeed without reconfiguring.
func InitLogger(settings Settings) error {
	return flatten(std.Initialize(settings))
}

// LogMessage submits one UI message to the process-wide logger. It never fails.
func LogMessage(level, message, location string) {
	std.Submit(level, message, location)
}

type initLoggerArgs struct {
	Settings *Settings `json:"settings"`
}

type logMessageArgs struct {
	Level    string  `json:"level"`
	Message  string  `json:"message"`
	Location *string `json:"location"`
}

// Bridge dispatches JSON-encoded UI invocations onto a Service.
type Bridge struct {
	Service *Service
}

// NewBridge returns a Bridge bound to the process-wide service.
func NewBridge() *Bridge {
	return &Bridge{Service: std}
}

// Invoke runs command with its JSON payload. Errors are flattened into a
// single message. log_frontend_message never fails, even on a bad payload.
func (b *Bridge) Invoke(command string, payload []byte) error {
	const op smerrors.Op = "logging.Bridge.Invoke"

	svc := b.Service
	if svc == nil {
		svc = std
	}

	switch command {
	case CmdInitLogger:
		var args initLoggerArgs
		if err := json.Unmarshal(payload, &args); err != nil {
			return flatten(smerrors.New(op).Err(kindError(ErrInvalidSettings, err)).Msg(errMsgBadPayload))
		}
		if args.Settings == nil {
			return flatten(smerrors.New(op).Err(ErrInvalidSettings).Msg(errMsgBadPayload))
		}
		return flatten(svc.Initialize(*args.Settings))
	case CmdLogMessage:
		var args logMessageArgs
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil
		}
		location := emptyString
		if args.Location != nil {
			location = *args.Location
		}
		svc.Submit(args.Level, args.Message, location)
		return nil
	default:
		return flatten(smerrors.New(op).Err(fmt.Errorf("command %q", command)).Msg(errMsgUnknownCommand))
	}
}
