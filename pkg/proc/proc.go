// Package proc supervises the local helper processes of the application:
// per-workspace coding-agent servers and the embedded editor server.
package proc

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/lerenn/workdeck/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=proc.go -destination=mocks/proc.gen.go -package=mocks

// StartParams contains parameters for Start.
type StartParams struct {
	// Name identifies the process for later Stop/Running calls.
	Name string
	// Command is the executable to run.
	Command string
	// Args are the command arguments.
	Args []string
	// Dir is the working directory, empty for the current one.
	Dir string
	// Env is appended to the parent environment.
	Env []string
}

// Supervisor interface provides process lifecycle management.
type Supervisor interface {
	// Start launches a named process. Starting an already running name fails.
	Start(params StartParams) error
	// Stop terminates a named process, escalating to a kill after the
	// timeout. Stopping an unknown name is a no-op.
	Stop(name string, timeout time.Duration) error
	// Running reports whether a named process is currently supervised.
	Running(name string) bool
	// StopAll terminates every supervised process.
	StopAll(timeout time.Duration) error
}

type realSupervisor struct {
	logger logger.Logger

	mu        sync.Mutex
	processes map[string]*exec.Cmd
}

// NewSupervisor creates a new Supervisor instance.
func NewSupervisor(log logger.Logger) Supervisor {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realSupervisor{
		logger:    log,
		processes: make(map[string]*exec.Cmd),
	}
}

// Start launches a named process.
func (s *realSupervisor) Start(params StartParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.processes[params.Name]; exists {
		return fmt.Errorf("%w: %s", ErrProcessAlreadyRunning, params.Name)
	}

	cmd := exec.Command(params.Command, params.Args...)
	cmd.Dir = params.Dir
	cmd.Env = append(os.Environ(), params.Env...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", params.Name, err)
	}

	s.processes[params.Name] = cmd
	s.logger.Logf("started process %s (pid %d)", params.Name, cmd.Process.Pid)

	// Reap the process so a crash doesn't leave a zombie, and drop it from
	// the table so Running reflects reality.
	go func() {
		err := cmd.Wait()
		s.mu.Lock()
		if s.processes[params.Name] == cmd {
			delete(s.processes, params.Name)
		}
		s.mu.Unlock()
		if err != nil {
			s.logger.Logf("process %s exited: %v", params.Name, err)
		}
	}()

	return nil
}

// Stop terminates a named process, escalating to a kill after the timeout.
func (s *realSupervisor) Stop(name string, timeout time.Duration) error {
	s.mu.Lock()
	cmd, exists := s.processes[name]
	delete(s.processes, name)
	s.mu.Unlock()

	if !exists {
		return nil
	}

	return s.terminate(name, cmd, timeout)
}

// Running reports whether a named process is currently supervised.
func (s *realSupervisor) Running(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.processes[name]
	return exists
}

// StopAll terminates every supervised process.
func (s *realSupervisor) StopAll(timeout time.Duration) error {
	s.mu.Lock()
	remaining := make(map[string]*exec.Cmd, len(s.processes))
	for name, cmd := range s.processes {
		remaining[name] = cmd
	}
	s.processes = make(map[string]*exec.Cmd)
	s.mu.Unlock()

	var firstErr error
	for name, cmd := range remaining {
		if err := s.terminate(name, cmd, timeout); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// terminate signals the process to exit and kills it after the timeout.
func (s *realSupervisor) terminate(name string, cmd *exec.Cmd, timeout time.Duration) error {
	if cmd.Process == nil {
		return nil
	}

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		// Already gone, or signalling unsupported: fall through to kill.
		s.logger.Logf("signalling process %s: %v", name, err)
	}

	done := make(chan struct{})
	go func() {
		// Wait may already be in flight from the reaper goroutine; polling
		// the process state avoids a second Wait on the same command.
		for cmd.ProcessState == nil {
			time.Sleep(10 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		if err := cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process %s: %w", name, err)
		}
		s.logger.Logf("killed process %s after %s timeout", name, timeout)
		return nil
	}
}

// FreePort asks the kernel for an available TCP port on localhost.
func FreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to allocate port: %w", err)
	}
	defer func() { _ = listener.Close() }()

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected listener address type %T", listener.Addr())
	}
	return addr.Port, nil
}
