package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	RundllCommand  = "rundll32"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsURLHandler = "url.dll,FileProtocolHandler"
)

// ErrUnsupportedURL is returned for empty URLs and non-http(s) schemes
var ErrUnsupportedURL = errors.New("unsupported url")

// ShellError reports a failure to hand a URL to the operating system
type ShellError struct {
	URL     string
	Command string
	Err     error
}

func (e *ShellError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("open %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("open %s with %s: %v", e.URL, e.Command, e.Err)
}

func (e *ShellError) Unwrap() error {
	return e.Err
}

// startCommand launches a process without waiting for it to exit
var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// OpenURL opens rawURL in the system default browser
func OpenURL(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return &ShellError{URL: rawURL, Err: err}
	}

	name, args, err := browserCommand(runtime.GOOS, rawURL)
	if err != nil {
		return &ShellError{URL: rawURL, Err: err}
	}

	if err := startCommand(name, args...); err != nil {
		return &ShellError{URL: rawURL, Command: name, Err: err}
	}
	return nil
}

// browserCommand returns the launcher for goos
func browserCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{rawURL}, nil
	case OSWindows:
		return RundllCommand, []string{WindowsURLHandler, rawURL}, nil
	case OSAndroid:
		return AMCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", rawURL}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd", "dragonfly":
		return XDGOpenCommand, []string{rawURL}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty", ErrUnsupportedURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrUnsupportedURL)
	}
	return nil
}
