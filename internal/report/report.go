package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// Infof prints a progress message to stdout.
func Infof(format string, args ...any) {
	infoColor.Fprintln(os.Stdout, fmt.Sprintf(format, args...))
}

// Warnf prints a recoverable problem to stderr. Warnings never change the
// exit code.
func Warnf(format string, args ...any) {
	warnColor.Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}

// Errorf prints a fatal problem to stderr.
func Errorf(format string, args ...any) {
	errorColor.Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}
