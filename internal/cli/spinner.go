package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows that a slow sink is running: the format, the output size in
// device pixels and the time spent so far. It stops when its context is
// cancelled.
type Spinner struct {
	w      io.Writer
	label  string
	start  time.Time
	ctx    context.Context
	cancel context.CancelFunc

	done    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	started bool
	width   int // visible width of the last frame
}

// newRenderSpinner creates a spinner for rendering format for a viewport at
// pixel ratio dpr.
func newRenderSpinner(ctx context.Context, w io.Writer, format string, vp ruler.Viewport, dpr float64) *Spinner {
	label := fmt.Sprintf("Rendering %s at %s×%s px", strings.ToUpper(format),
		ruler.FormatPPI(vp.Width*dpr), ruler.FormatPPI(vp.Height*dpr))
	return newSpinnerWithContext(ctx, w, label)
}

// newSpinner creates a new spinner drawing label on w.
func newSpinner(w io.Writer, label string) *Spinner {
	return newSpinnerWithContext(context.Background(), w, label)
}

// newSpinnerWithContext creates a spinner that will stop when the context is cancelled.
func newSpinnerWithContext(ctx context.Context, w io.Writer, label string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		label:   label,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the spinner animation. Calling it more than once has no
// effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.start = time.Now()
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := fmt.Sprintf("%.1fs", time.Since(s.start).Seconds())
	fmt.Fprintf(s.w, "\r%s %s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label), StyleDim.Render(elapsed))
	s.width = utf8.RuneCountInString(frame+s.label+elapsed) + 2
}

// Stop stops the spinner and clears the line. It is safe to call more than
// once, and before Start.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess(s.w, "%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError(s.w, "%s", message)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
