package platform

import (
	"errors"
	"runtime"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	const link = "https://en.wikipedia.org/wiki/Go_(programming_language)"

	tests := []struct {
		goos     string
		name     string
		lastArg  string
		argCount int
	}{
		{OSDarwin, OpenCommand, link, 1},
		{OSWindows, RundllCommand, link, 2},
		{OSLinux, XDGOpenCommand, link, 1},
		{"freebsd", XDGOpenCommand, link, 1},
		{OSAndroid, AMCommand, link, 5},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := browserCommand(tt.goos, link)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if name != tt.name {
				t.Errorf("Expected command %s, got %s", tt.name, name)
			}
			if len(args) != tt.argCount || args[len(args)-1] != tt.lastArg {
				t.Errorf("Unexpected args %v", args)
			}
		})
	}

	if _, _, err := browserCommand("plan9", link); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}

func TestOpenURL_RejectsInvalidURLs(t *testing.T) {
	called := false
	restore := startCommand
	startCommand = func(name string, args ...string) error {
		called = true
		return nil
	}
	t.Cleanup(func() { startCommand = restore })

	for _, raw := range []string{"", "   ", "file:///etc/passwd", "javascript:alert(1)", "https://", "://bad"} {
		err := OpenURL(raw)
		var se *ShellError
		if !errors.As(err, &se) {
			t.Errorf("%q: expected ShellError, got %v", raw, err)
			continue
		}
		if !errors.Is(err, ErrUnsupportedURL) {
			t.Errorf("%q: expected ErrUnsupportedURL, got %v", raw, err)
		}
	}
	if called {
		t.Error("No command should be launched for invalid URLs")
	}
}

func TestOpenURL_LaunchesCommand(t *testing.T) {
	if _, _, err := browserCommand(runtime.GOOS, "https://example.org"); err != nil {
		t.Skipf("no browser launcher on %s", runtime.GOOS)
	}

	var gotArgs []string
	restore := startCommand
	startCommand = func(name string, args ...string) error {
		gotArgs = args
		return nil
	}
	t.Cleanup(func() { startCommand = restore })

	const link = "https://de.wikipedia.org/wiki/Berliner_Mauer"
	if err := OpenURL(link); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != link {
		t.Errorf("Expected URL as last argument, got %v", gotArgs)
	}
}

func TestOpenURL_CommandFailure(t *testing.T) {
	if _, _, err := browserCommand(runtime.GOOS, "https://example.org"); err != nil {
		t.Skipf("no browser launcher on %s", runtime.GOOS)
	}

	launchErr := errors.New("executable file not found")
	restore := startCommand
	startCommand = func(name string, args ...string) error { return launchErr }
	t.Cleanup(func() { startCommand = restore })

	err := OpenURL("https://en.wikipedia.org/wiki/Main_Page")
	var se *ShellError
	if !errors.As(err, &se) {
		t.Fatalf("Expected ShellError, got %v", err)
	}
	if se.Command == "" || !errors.Is(err, launchErr) {
		t.Errorf("Unexpected error %v", err)
	}
}
