// pkg/logging/logging.go - leveled, timestamped logging for the Wrye Bash setup tools.
//
// The logger is a process-wide singleton initialized from the loaded
// configuration. Every run gets its own timestamped log file under the
// common application directory so reruns never clobber earlier evidence,
// and messages mirror to the console for interactive runs.

package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of the log message.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of the LogLevel.
func (ll LogLevel) String() string {
	switch ll {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a LogLevel. Unknown strings
// fall back to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Options holds the knobs the logger is initialized with.
type Options struct {
	Dir           string   // log directory; empty disables file output
	Level         LogLevel // minimum level written
	EnableConsole bool     // mirror messages to stderr
}

// Logger encapsulates the leveled logging functionality.
type Logger struct {
	mu       sync.Mutex
	logger   *log.Logger
	logLevel LogLevel
	logFile  *os.File
	console  bool
	session  time.Time
}

// singleton instance and sync.Once for thread-safe initialization
var (
	instance *Logger
	once     sync.Once
)

// Init initializes the singleton Logger. It must be called before any
// logging functions are used; later calls are no-ops.
func Init(opts Options) error {
	var initErr error
	once.Do(func() {
		instance, initErr = newLogger(opts)
	})
	return initErr
}

// ReInit replaces the singleton, closing any previous log file. Used when
// verbosity flags change the effective level after initial setup.
func ReInit(opts Options) error {
	CloseLogger()
	l, err := newLogger(opts)
	if err != nil {
		return err
	}
	instance = l
	return nil
}

func newLogger(opts Options) (*Logger, error) {
	l := &Logger{
		logLevel: opts.Level,
		console:  opts.EnableConsole,
		session:  time.Now(),
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", opts.Dir, err)
		}
		name := fmt.Sprintf("setup-%s.log", l.session.Format("2006-01-02-150405"))
		f, err := os.OpenFile(filepath.Join(opts.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = f
		l.logger = log.New(f, "", 0)
	}

	return l, nil
}

// CloseLogger closes the log file of the singleton, if any.
func CloseLogger() {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()

	if instance.logFile != nil {
		if err := instance.logFile.Close(); err != nil {
			fmt.Printf("Failed to close log file: %v\n", err)
		}
		instance.logFile = nil
		instance.logger = nil
	}
}

// logMessage writes one formatted message if level passes the threshold.
func (l *Logger) logMessage(level LogLevel, message string, keyValues ...interface{}) {
	if level > l.logLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s %-5s %s%s",
		time.Now().Format("2006-01-02 15:04:05"),
		level.String(),
		message,
		formatKeyValues(keyValues...))

	if l.logger != nil {
		l.logger.Println(line)
	}
	if l.console {
		fmt.Fprintln(os.Stderr, line)
	}
}

// formatKeyValues renders trailing key/value pairs as " key=value ...".
// An odd trailing key is rendered with a bare "=".
func formatKeyValues(keyValues ...interface{}) string {
	if len(keyValues) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(keyValues); i += 2 {
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("%v", keyValues[i]))
		b.WriteString("=")
		if i+1 < len(keyValues) {
			b.WriteString(fmt.Sprintf("%v", keyValues[i+1]))
		}
	}
	return b.String()
}

// Info logs informational messages.
func Info(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: INFO %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelInfo, message, keyValues...)
}

// Debug logs debug messages.
func Debug(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: DEBUG %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelDebug, message, keyValues...)
}

// Warn logs warning messages.
func Warn(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: WARN %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelWarn, message, keyValues...)
}

// Error logs error messages.
func Error(message string, keyValues ...interface{}) {
	if instance == nil {
		fmt.Printf("LOGGING NOT INITIALIZED: ERROR %s %v\n", message, keyValues)
		return
	}
	instance.logMessage(LevelError, message, keyValues...)
}
