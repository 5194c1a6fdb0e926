package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName names the state directory and the log file
const AppName = "vitestarter"

// DefaultLevel is the level before SetupLogger runs and at verbosity 0
const DefaultLevel = zerolog.WarnLevel

var (
	mu      sync.Mutex
	logFile *os.File
)

func init() {
	useDefaults()
}

// useDefaults points the global logger at stderr in console form at
// DefaultLevel. Packages may log while commands are still being built,
// before any verbosity flag has been parsed.
func useDefaults() {
	zerolog.SetGlobalLevel(DefaultLevel)
	log.Logger = zerolog.New(consoleWriter()).With().Timestamp().Logger()
}

// stderrWriter resolves os.Stderr on every write
type stderrWriter struct{}

func (stderrWriter) Write(p []byte) (int, error) {
	return os.Stderr.Write(p)
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        stderrWriter{},
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// levelFor maps the -v count to a level: none is warn, then info, debug, trace
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return DefaultLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for the given verbosity. Events
// go to stderr and are appended to the log file under the XDG state home;
// if the file cannot be opened only stderr is used.
func SetupLogger(verbosity int) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(levelFor(verbosity))

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := logFilePath()
	file, fileErr := openLogFile(path)

	var out io.Writer = consoleWriter()
	if fileErr == nil {
		logFile = file
		out = zerolog.MultiLevelWriter(out, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger ready")
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// logFilePath prefers $XDG_STATE_HOME over the xdg default so tests and
// callers can redirect it at runtime
func logFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return AppName + ".log"
	}
	return filepath.Join(stateHome, AppName, AppName+".log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records an external command before it runs
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of operation and returns the func that
// logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
