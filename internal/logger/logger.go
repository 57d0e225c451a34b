package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color" // Colored console output per log level
)

// Console printers for each log level. These behave like fmt.Printf but with
// text colored appropriately: green for info, bright magenta for warnings,
// red for errors. Errors additionally go to stderr so the operator sees them
// even when stdout is captured.
var (
	infoConsole = color.New(color.FgGreen).PrintfFunc()
	warnConsole = color.New(color.FgHiMagenta).PrintfFunc()
	errConsole  = color.New(color.FgRed).FprintfFunc()
)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug func(format string, a ...any) = func(format string, a ...any) {}

// logFile is the append-only audit log. Every Info/Warn/Error call writes one
// timestamped line to it in addition to the console output. When Init has not
// been called the file sink is simply skipped.
var logFile *os.File

// Init opens (or creates) the append-only log file and enables or disables
// debug logging. The log file records one line per event:
//
//	2024-05-04 12:30:01 : [INFO] message
func Init(path string, enableDebug bool) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f

	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
	return nil
}

// Close flushes and closes the log file. Safe to call when Init never ran.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Info logs an informational message to the console and the log file.
func Info(format string, a ...any) {
	infoConsole("[INFO] "+format+"\n", a...)
	appendLine("INFO", fmt.Sprintf(format, a...))
}

// Warn logs a warning to the console and the log file.
func Warn(format string, a ...any) {
	warnConsole("[WARNING] "+format+"\n", a...)
	appendLine("WARNING", fmt.Sprintf(format, a...))
}

// Error logs an error to stderr and the log file.
func Error(format string, a ...any) {
	errConsole(os.Stderr, "[ERROR] "+format+"\n", a...)
	appendLine("ERROR", fmt.Sprintf(format, a...))
}

// appendLine writes one timestamped line to the log file, if one is open.
func appendLine(level, msg string) {
	if logFile == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s : [%s] %s\n", ts, level, strings.TrimRight(msg, "\n"))
	if _, err := logFile.WriteString(line); err != nil {
		errConsole(os.Stderr, "[ERROR] Failed to write log entry: %v\n", err)
	}
}
