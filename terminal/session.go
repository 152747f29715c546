package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// readChunkSize bounds how many PTY bytes one WithWrite critical section
// feeds into the model.
const readChunkSize = 64 * 1024

// Session owns a pane's child process, its PTY, and the writer goroutine
// that pumps PTY output into the pane's Model. Exactly one Session exists
// per pane; it shares the pane's Handle with the render thread and nothing
// else.
type Session struct {
	handle *Handle
	cmd    *exec.Cmd
	ptmx   *os.File

	done      chan struct{}
	closeOnce sync.Once
}

// SessionConfig describes how to spawn a pane's shell.
type SessionConfig struct {
	// Shell is the command to run; empty means $SHELL, falling back to
	// /bin/sh.
	Shell string
	Cols  int
	Rows  int

	// OnOutput fires after each chunk is fed into the model, outside the
	// pane lock. Used to mark the frame scheduler dirty.
	OnOutput func()

	// OnExit fires once when the writer goroutine ends, whether by child
	// exit, PTY teardown, or read failure. err is nil for a clean EOF.
	OnExit func(err error)
}

// StartSession spawns the shell on a fresh PTY and starts the writer
// goroutine.
func StartSession(h *Handle, cfg SessionConfig) (*Session, error) {
	shell := cfg.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(max(cfg.Cols, 1)),
		Rows: uint16(max(cfg.Rows, 1)),
	})
	if err != nil {
		return nil, fmt.Errorf("spawn %q: %w", shell, err)
	}

	s := &Session{
		handle: h,
		cmd:    cmd,
		ptmx:   ptmx,
		done:   make(chan struct{}),
	}
	go s.readLoop(cfg.OnOutput, cfg.OnExit)
	return s, nil
}

// readLoop is the pane's writer goroutine: read one chunk, advance the
// model under the lock, signal, repeat. The lock is never held across the
// blocking read.
func (s *Session) readLoop(onOutput func(), onExit func(err error)) {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pane writer crashed: %v\n%s", r, debug.Stack())
		}
	}()

	buf := make([]byte, readChunkSize)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			s.handle.WithWrite(func(m Model) {
				m.Advance(chunk)
			})
			if onOutput != nil {
				onOutput()
			}
		}
		if err != nil {
			// Linux reports EIO on the master side once the child is
			// gone; both that and EOF are clean terminations.
			if err == io.EOF || errors.Is(err, syscall.EIO) {
				err = nil
			}
			if onExit != nil {
				onExit(err)
			}
			return
		}
	}
}

// Write forwards input bytes to the child.
func (s *Session) Write(p []byte) error {
	_, err := s.ptmx.Write(p)
	return err
}

// Resize propagates a new grid size to the child's PTY.
func (s *Session) Resize(cols, rows int) error {
	return pty.Setsize(s.ptmx, &pty.Winsize{
		Cols: uint16(max(cols, 1)),
		Rows: uint16(max(rows, 1)),
	})
}

// Done is closed once the writer goroutine has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Close tears the session down: closing the PTY forces the writer's read
// to fail so the goroutine observes termination, then the child is
// reaped. Close blocks until the writer goroutine has exited, so callers
// may drop the pane's Handle afterwards.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.ptmx.Close()
		<-s.done
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		_ = s.cmd.Wait()
	})
}
