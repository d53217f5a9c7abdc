package utils

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// ANSI escape sequences used by the CLI output.
const (
	SuccessColor = "\x1b[92m"
	DefaultColor = "\x1b[39m"
)

// Spinner initializes the process indicator.
type Spinner struct {
	stopChan chan struct{}
	active   bool
}

// NewSpinner instantiates a new Spinner struct.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start starts the process indicator. It stays silent when stderr is not a
// terminal, so piped output is not polluted with control characters.
func (s *Spinner) Start(message string) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	s.stopChan = make(chan struct{}, 1)
	s.active = true

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator.
func (s *Spinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.stopChan <- struct{}{}
	fmt.Fprint(os.Stderr, "\r")
}
