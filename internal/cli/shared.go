package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// One shared reader so a buffered read-ahead does not swallow the answer to
// a later prompt.
var stdin = bufio.NewReader(os.Stdin)

// confirmStdin blocks on one line from stdin; only answers starting with
// y/Y proceed.
func confirmStdin(prompt string) bool {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y')
}

func withSpinner(desc string) (stop func()) {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				spinner.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()
	return func() {
		close(done)
		spinner.Finish()
	}
}
