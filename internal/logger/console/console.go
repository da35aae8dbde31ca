// Package console is the charmbracelet/log backend of the logger facade.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger writes human readable log lines
type Logger struct {
	logger *log.Logger
}

// Params configures a console logger
type Params struct {
	Debug  bool
	Output io.Writer
}

// New creates a console logger, writing to stderr unless Output is set
func New(params Params) *Logger {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}

	out := params.Output
	if out == nil {
		out = os.Stderr
	}

	return &Logger{
		logger: log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			Level:           level,
			Prefix:          "topogen",
		}),
	}
}

func (c *Logger) Debug(message string, keyvals ...any) { c.logger.Debug(message, keyvals...) }
func (c *Logger) Info(message string, keyvals ...any)  { c.logger.Info(message, keyvals...) }
func (c *Logger) Warn(message string, keyvals ...any)  { c.logger.Warn(message, keyvals...) }
func (c *Logger) Error(message string, keyvals ...any) { c.logger.Error(message, keyvals...) }
