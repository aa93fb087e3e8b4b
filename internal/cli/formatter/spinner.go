package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a braille indicator with a message while a non-TUI
// command waits on the platform API. It writes to stderr by default so
// piped stdout stays clean.
type Spinner struct {
	w        io.Writer
	interval time.Duration

	mu      sync.Mutex
	message string
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner writing to w at the given frame interval.
func NewSpinner(w io.Writer, message string, interval time.Duration) *Spinner {
	if interval <= 0 {
		interval = spinnerInterval
	}
	return &Spinner{
		w:        w,
		interval: interval,
		message:  message,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetMessage swaps the text shown next to the spinner on the next frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Start begins the animation. Call Stop to end it and clear the line.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				s.mu.Lock()
				msg := s.message
				s.mu.Unlock()
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.w, "\r  %s %s", StyleBlue.Render(frame), Dim(msg))
			}
		}
	}()
}

// Stop ends the animation, clears the line, and waits for the writer
// goroutine to finish. Safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	select {
	case <-s.stop:
		s.mu.Unlock()
		return
	default:
		close(s.stop)
	}
	s.mu.Unlock()
	<-s.done
}

// StartSpinner starts a stderr spinner and returns its stop function.
func StartSpinner(message string) func() {
	s := NewSpinner(os.Stderr, message, spinnerInterval)
	s.Start()
	return s.Stop
}
