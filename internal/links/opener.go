package links

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Opener hands a URL to whatever the platform uses to show web pages.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// BrowserOpener runs the operating system's URL handler.
type BrowserOpener struct {
	// Command and Args are run with the URL appended.
	Command string
	Args    []string
	Logger  *zap.Logger
}

// NewBrowserOpener returns an opener for the current operating system.
func NewBrowserOpener(logger *zap.Logger) *BrowserOpener {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &BrowserOpener{Logger: logger}
	switch runtime.GOOS {
	case "darwin":
		o.Command = "open"
	case "windows":
		o.Command = "rundll32"
		o.Args = []string{"url.dll,FileProtocolHandler"}
	default:
		o.Command = "xdg-open"
	}
	return o
}

// Open validates url and runs the handler command.
func (o *BrowserOpener) Open(ctx context.Context, url string) error {
	if !IsOpenable(url) {
		return &OpenError{URL: url, Message: "not an absolute http(s) URL"}
	}
	if _, err := exec.LookPath(o.Command); err != nil {
		return &OpenError{URL: url, Message: o.Command + " not found in PATH", Cause: err}
	}

	args := append(append([]string(nil), o.Args...), url)
	cmd := exec.CommandContext(ctx, o.Command, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	o.logger().Debug("opening url", zap.String("url", url), zap.String("command", o.Command))
	if err := cmd.Run(); err != nil {
		msg := "handler failed"
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += ": " + s
		}
		return &OpenError{URL: url, Message: msg, Cause: err}
	}
	return nil
}

func (o *BrowserOpener) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// RecordingOpener remembers every URL it is asked to open.
// Set Err to make Open fail.
type RecordingOpener struct {
	mu   sync.Mutex
	urls []string
	Err  error
}

func (o *RecordingOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return o.Err
	}
	o.urls = append(o.urls, url)
	return nil
}

// URLs returns the URLs opened so far.
func (o *RecordingOpener) URLs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}
