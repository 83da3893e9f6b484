package utils

import (
	"fmt"
	"os"
	"strings"
)

// Terminal color codes using ANSI escape sequences
const (
	resetColor  = "\033[0m"
	redColor    = "\033[31m" // For errors
	greenColor  = "\033[32m" // For success/completion
	yellowColor = "\033[33m" // For warnings
	blueColor   = "\033[34m" // For progress/info
	cyanColor   = "\033[36m" // For debug info
)

func coloredText(text string, color string) string {
	return color + text + resetColor
}

// LogLevel represents the level of logging verbosity
type LogLevel int

const (
	// LevelQuiet suppresses all output except errors
	LevelQuiet LogLevel = iota
	// LevelNormal shows standard run progress
	LevelNormal
	// LevelVerbose shows detailed information about each video
	LevelVerbose
	// LevelDebug shows all debugging information
	LevelDebug
)

var (
	// CurrentLogLevel is the global log level setting
	CurrentLogLevel LogLevel = LevelNormal
)

// SetLogLevel sets the global logging level
func SetLogLevel(level LogLevel) {
	CurrentLogLevel = level
}

// LogLevelFromString converts a string level name to LogLevel
func LogLevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "quiet", "q":
		return LevelQuiet
	case "normal", "n":
		return LevelNormal
	case "verbose", "v":
		return LevelVerbose
	case "debug", "d":
		return LevelDebug
	default:
		return LevelNormal
	}
}

// LogError logs an error message (always shown)
func LogError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", coloredText(fmt.Sprintf(format, args...), redColor))
}

// LogInfo logs an informational message at Normal+ level
func LogInfo(format string, args ...interface{}) {
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", coloredText(fmt.Sprintf(format, args...), blueColor))
	}
}

// LogSuccess logs a success message at Normal+ level
func LogSuccess(format string, args ...interface{}) {
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", coloredText(fmt.Sprintf(format, args...), greenColor))
	}
}

// LogWarning logs a warning message at Normal+ level
func LogWarning(format string, args ...interface{}) {
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", coloredText(fmt.Sprintf(format, args...), yellowColor))
	}
}

// LogVerbose logs a message at Verbose+ level
func LogVerbose(format string, args ...interface{}) {
	if CurrentLogLevel >= LevelVerbose {
		fmt.Printf("\t%s\n", coloredText(fmt.Sprintf(format, args...), blueColor))
	}
}

// LogDebug logs a debug message at Debug level
func LogDebug(format string, args ...interface{}) {
	if CurrentLogLevel >= LevelDebug {
		fmt.Printf("\t%s\n", coloredText(fmt.Sprintf(format, args...), cyanColor))
	}
}
