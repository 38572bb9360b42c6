package hypr

import (
	"bufio"
	"errors"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrSocketNotFound indicates the socket2 endpoint could not be
// discovered from the environment.
var ErrSocketNotFound = errors.New("hyprland socket2 not found")

// Trigger prefixes on the socket2 stream that indicate a workspace or
// monitor focus change.
var triggerPrefixes = []string{"workspace>>", "focusedmon>>"}

// Listener maintains a long-lived connection to the Hyprland event
// socket and fires the trigger callback for recognized events. It
// never touches indicator state itself.
type Listener struct {
	path    string
	trigger func()
	backoff time.Duration
}

// NewListener creates a listener that calls trigger for each workspace
// change event. The callback must be safe to call from the listener
// goroutine.
func NewListener(trigger func()) *Listener {
	return &Listener{
		trigger: trigger,
		backoff: time.Second,
	}
}

// SocketPath discovers the socket2 endpoint from the Hyprland instance
// signature, preferring XDG_RUNTIME_DIR over the legacy /tmp location.
func SocketPath() (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", ErrSocketNotFound
	}

	var candidates []string
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		candidates = append(candidates, filepath.Join(runtimeDir, "hypr", signature, ".socket2.sock"))
	}
	candidates = append(candidates, filepath.Join("/tmp", "hypr", signature, ".socket2.sock"))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrSocketNotFound
}

// Run connects and consumes events until process termination. If the
// socket path cannot be discovered at all the listener gives up
// permanently; once a path is known, connection and read failures are
// retried forever with a fixed back-off. Intended to run on its own
// goroutine.
func (listener *Listener) Run() {
	path := listener.path
	if path == "" {
		discovered, err := SocketPath()
		if err != nil {
			log.Printf("ipc: %v, workspace events disabled", err)
			return
		}
		path = discovered
	}

	for {
		conn, err := net.Dial("unix", path)
		if err != nil {
			time.Sleep(listener.backoff)
			continue
		}
		listener.consume(conn)
		_ = conn.Close()
		time.Sleep(listener.backoff)
	}
}

// consume reads the line stream until EOF or a read error. Partial
// lines at read boundaries are carried by the scanner.
func (listener *Listener) consume(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		if matchLine(scanner.Text()) {
			listener.trigger()
		}
	}
}

func matchLine(line string) bool {
	for _, prefix := range triggerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
