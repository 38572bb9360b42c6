package hypr

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMatchLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{line: "workspace>>3", expected: true},
		{line: "focusedmon>>DP-1,2", expected: true},
		{line: "workspacev2>>3,3", expected: false},
		{line: "openwindow>>1234,3,foot,foot", expected: false},
		{line: "activewindow>>foot,~", expected: false},
		{line: "", expected: false},
	}

	for _, test := range tests {
		if got := matchLine(test.line); got != test.expected {
			t.Errorf("matchLine(%q) = %v, want %v", test.line, got, test.expected)
		}
	}
}

func TestListenerConsumesAndReconnects(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "socket2.sock")
	server, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	triggers := make(chan struct{}, 16)
	listener := &Listener{
		path:    socketPath,
		trigger: func() { triggers <- struct{}{} },
		backoff: 10 * time.Millisecond,
	}
	go listener.Run()

	expectTriggers := func(count int) {
		t.Helper()
		for received := 0; received < count; received++ {
			select {
			case <-triggers:
			case <-time.After(5 * time.Second):
				t.Fatalf("got %d triggers, want %d", received, count)
			}
		}
	}

	conn, err := server.Accept()
	if err != nil {
		t.Fatal(err)
	}

	// Recognized prefixes fire one trigger per line; the split write
	// exercises partial-line carry-over.
	if _, err := conn.Write([]byte("workspace>>2\nopenwindow>>ab,2,foot,foot\nfocused")); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Write([]byte("mon>>DP-1,3\n")); err != nil {
		t.Fatal(err)
	}
	expectTriggers(2)

	// Dropping the connection must lead to a reconnect, not a stop.
	_ = conn.Close()
	reconnected, err := server.Accept()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reconnected.Write([]byte("workspace>>5\n")); err != nil {
		t.Fatal(err)
	}
	expectTriggers(1)
	_ = reconnected.Close()
}

func TestSocketPathRequiresSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	if _, err := SocketPath(); err == nil {
		t.Fatal("expected discovery failure without instance signature")
	}
}

func TestSocketPathFromRuntimeDir(t *testing.T) {
	runtimeDir := t.TempDir()
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "sig")
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)

	expected := filepath.Join(runtimeDir, "hypr", "sig", ".socket2.sock")
	server, err := listenAt(t, expected)
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	path, err := SocketPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != expected {
		t.Fatalf("SocketPath() = %q, want %q", path, expected)
	}
}

func listenAt(t *testing.T, path string) (net.Listener, error) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return net.Listen("unix", path)
}
