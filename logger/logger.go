// Package logger is the minimal logging facility used by the linked tools.
//
// Messages go through a package-level Logger, which discards everything until
// SimpleSetup or SetLogger installs a real one.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"
)

// A Logger is a fairly minimal logging tool.
type Logger interface {
	// Notice is for messages that the user should see
	Notice(msg string)
	// Debug is for messages that the user should be able to find if they're debugging something
	Debug(msg string)
}

const (
	// DefaultFlags are passed to the default console log.Logger
	DefaultFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile

	// DebugEnv is the environment variable enabling debug messages.
	DebugEnv = "LINKED_DEBUG"
)

type nullLogger struct{}

func (nullLogger) Notice(string) {}
func (nullLogger) Debug(string)  {}

// NullLogger is a logger that does nothing
var NullLogger = nullLogger{}

var (
	logger Logger = NullLogger
	lock   sync.Mutex
)

// Noticef notifies the user of something
func Noticef(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	lock.Lock()
	defer lock.Unlock()

	logger.Notice(msg)
}

// Debugf records something in the debug log
func Debugf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	lock.Lock()
	defer lock.Unlock()

	logger.Debug(msg)
}

// SetLogger sets the global logger to the given one
func SetLogger(l Logger) {
	lock.Lock()
	defer lock.Unlock()

	logger = l
}

// MockLogger replaces the existing logger with a buffer and returns
// the log buffer and a restore function. Debug messages are always
// recorded by the mocked logger.
func MockLogger() (buf *bytes.Buffer, restore func()) {
	buf = &bytes.Buffer{}
	lock.Lock()
	oldLogger := logger
	lock.Unlock()

	l := New(buf, DefaultFlags)
	l.debug = true
	SetLogger(l)
	return buf, func() {
		SetLogger(oldLogger)
	}
}

// Log is a Logger writing to an io.Writer through a log.Logger.
type Log struct {
	log   *log.Logger
	debug bool
}

func (l *Log) debugEnabled() bool {
	return l.debug || getenvBool(DebugEnv)
}

// Debug only prints if LINKED_DEBUG is set
func (l *Log) Debug(msg string) {
	if l.debugEnabled() {
		l.log.Output(3, "DEBUG: "+msg)
	}
}

// Notice alerts the user about something
func (l *Log) Notice(msg string) {
	l.log.Output(3, msg)
}

// New creates a Log using the given io.Writer and flag.
func New(w io.Writer, flag int) *Log {
	return &Log{log: log.New(w, "", flag)}
}

// SimpleSetup creates the default (console) logger
func SimpleSetup() {
	flags := log.Lshortfile
	if getenvBool(DebugEnv) {
		flags = DefaultFlags
	}
	SetLogger(New(os.Stderr, flags))
}

func getenvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
