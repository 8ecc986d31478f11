package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
)

// https://stackoverflow.com/questions/76858037/how-to-use-zerolog-to-filter-info-logs-to-stdout-and-error-logs-to-stderr
type SpecificLevelWriter struct {
	io.Writer
	DebugVerbose *bool
	TraceVerbose *bool
}

var Logger = zerolog.Nop()
var runLogFile *lumberjack.Logger

// Closes the log file
func CloseLogFile() error {
	if runLogFile == nil {
		return nil
	}

	return runLogFile.Close()
}

// Initialises the logger (specific rules and handlers)
// The log file always receives debug messages, the console only when verbose
func InitializeLogger(verbose1, verbose2 bool, logFilePath string) {
	if logFilePath == "" {
		logFilePath = LogFile
	}

	runLogFile = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
	}

	consolePartsToExclude := []string{zerolog.CallerFieldName}

	trueVar := true
	falseVar := false

	multi := zerolog.MultiLevelWriter(
		SpecificLevelWriter{
			Writer:       runLogFile,
			DebugVerbose: &trueVar,
			TraceVerbose: &falseVar,
		},
		SpecificLevelWriter{
			Writer:       zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822Z, PartsExclude: consolePartsToExclude},
			DebugVerbose: &verbose1,
			TraceVerbose: &verbose2,
		},
	)

	Logger = zerolog.New(multi).With().Caller().Timestamp().Logger()
}

// Handler for the log level
// Does log or not according to the verbose mode
func (w SpecificLevelWriter) WriteLevel(level zerolog.Level, content []byte) (int, error) {
	if level == zerolog.TraceLevel && !*w.TraceVerbose {
		return len(content), nil
	}

	if level == zerolog.DebugLevel && !*w.DebugVerbose {
		return len(content), nil
	}

	return w.Write(content)
}
