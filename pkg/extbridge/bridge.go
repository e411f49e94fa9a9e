// Package extbridge provides the request/acknowledgement channel between the
// application and the per-workspace editor extensions, carried over unix
// domain sockets with newline-delimited JSON frames.
package extbridge

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lerenn/workdeck/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=bridge.go -destination=mocks/bridge.gen.go -package=mocks

// Request is one command sent to a workspace extension.
type Request struct {
	ID      string            `json:"id"`
	Command string            `json:"command"`
	Args    map[string]string `json:"args,omitempty"`
}

// Ack is the extension's acknowledgement of a request.
type Ack struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CommandShutdown asks the extension to flush and disconnect.
const CommandShutdown = "shutdown"

// Bridge interface provides the editor extension channel operations.
type Bridge interface {
	// Request sends a command to the workspace extension and waits for its
	// acknowledgement, bounded by the configured timeout.
	Request(ctx context.Context, workspaceID, command string, args map[string]string) (*Ack, error)
	// WaitReady blocks until the workspace extension accepts connections or
	// ctx expires. Hook handlers return it as a pipeline suspension.
	WaitReady(ctx context.Context, workspaceID string) error
	// Shutdown performs the graceful teardown handshake: send a shutdown
	// request, then wait for the remote side to disconnect or for the
	// timeout, whichever comes first.
	Shutdown(ctx context.Context, workspaceID string) error
}

type realBridge struct {
	socketDir string
	timeout   time.Duration
	logger    logger.Logger
}

// NewBridge creates a Bridge dialing sockets under socketDir. The timeout
// bounds every round-trip, including the shutdown handshake.
func NewBridge(socketDir string, timeout time.Duration, log logger.Logger) Bridge {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &realBridge{
		socketDir: socketDir,
		timeout:   timeout,
		logger:    log,
	}
}

// SocketPath returns the unix socket path of a workspace extension.
func (b *realBridge) SocketPath(workspaceID string) string {
	return filepath.Join(b.socketDir, workspaceID+".sock")
}

// Request sends a command to the workspace extension and waits for its
// acknowledgement.
func (b *realBridge) Request(
	ctx context.Context, workspaceID, command string, args map[string]string) (*Ack, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	conn, err := b.dial(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	request := Request{
		ID:      uuid.NewString(),
		Command: command,
		Args:    args,
	}

	ack, err := b.roundTrip(ctx, conn, request)
	if err != nil {
		return nil, fmt.Errorf("request %s to workspace %s: %w", command, workspaceID, err)
	}
	if ack.ID != request.ID {
		return nil, fmt.Errorf("%w: sent %s, got %s", ErrAckMismatch, request.ID, ack.ID)
	}
	if !ack.OK {
		return ack, fmt.Errorf("%w: %s", ErrCommandRejected, ack.Error)
	}
	return ack, nil
}

// WaitReady blocks until the workspace extension accepts connections or ctx
// expires.
func (b *realBridge) WaitReady(ctx context.Context, workspaceID string) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		conn, err := b.dial(ctx, workspaceID)
		if err == nil {
			_ = conn.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: workspace %s: %w", ErrExtensionNotReady, workspaceID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Shutdown performs the graceful teardown handshake.
func (b *realBridge) Shutdown(ctx context.Context, workspaceID string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	conn, err := b.dial(ctx, workspaceID)
	if err != nil {
		// No reachable extension means nothing to shut down.
		b.logger.Logf("bridge: no extension for workspace %s, skipping handshake", workspaceID)
		return nil
	}
	defer func() { _ = conn.Close() }()

	request := Request{
		ID:      uuid.NewString(),
		Command: CommandShutdown,
	}
	if _, err := b.roundTrip(ctx, conn, request); err != nil {
		return fmt.Errorf("shutdown handshake with workspace %s: %w", workspaceID, err)
	}

	// Wait for the remote side to disconnect, bounded by the deadline
	// already set on the connection.
	buf := make([]byte, 1)
	for {
		if _, err := conn.Read(buf); err != nil {
			// EOF is the disconnect we are waiting for; a deadline error
			// means the extension did not hang up in time, which teardown
			// tolerates.
			return nil
		}
	}
}

func (b *realBridge) dial(ctx context.Context, workspaceID string) (net.Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", b.SocketPath(workspaceID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtensionUnreachable, workspaceID, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	return conn, nil
}

func (b *realBridge) roundTrip(_ context.Context, conn net.Conn, request Request) (*Ack, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read acknowledgement: %w", err)
	}

	var ack Ack
	if err := json.Unmarshal(line, &ack); err != nil {
		return nil, fmt.Errorf("failed to decode acknowledgement: %w", err)
	}
	return &ack, nil
}
