// Package lock keeps a single TUI instance per config directory. The lock is
// advisory: a second TUI is refused, CLI commands still write freely.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrLocked is matched by every *LockedError.
var ErrLocked = errors.New("another clockface instance is running")

type LockedError struct {
	PID int
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%v (pid %d)", ErrLocked, e.PID)
}

func (e *LockedError) Is(target error) bool {
	return target == ErrLocked
}

// Info describes the current lockfile.
type Info struct {
	Path   string
	Exists bool
	PID    int
	// Alive is true when PID belongs to a running clockface process.
	Alive bool
}

func (i Info) String() string {
	switch {
	case !i.Exists:
		return "not held"
	case i.Alive:
		return fmt.Sprintf("held by pid %d", i.PID)
	default:
		return fmt.Sprintf("stale (pid %d)", i.PID)
	}
}

type Lock struct {
	path string
}

// New returns the lock stored in dir.
func New(dir string) *Lock {
	return &Lock{path: filepath.Join(dir, constants.LockfileName)}
}

func (l *Lock) Path() string {
	return l.path
}

// Status reads the lockfile without changing it.
func (l *Lock) Status() (Info, error) {
	info := Info{Path: l.path}

	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return info, fmt.Errorf("failed to read lockfile: %w", err)
	}
	info.Exists = true

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		// Malformed lockfiles are treated as stale
		return info, nil
	}
	info.PID = pid
	info.Alive = isClockface(pid)
	return info, nil
}

func isClockface(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}

// Acquire writes this process's pid to the lockfile. A lock held by another
// live clockface process yields a *LockedError; stale locks are replaced.
func (l *Lock) Acquire() error {
	info, err := l.Status()
	if err != nil {
		return err
	}
	self := getpidFunc()
	if info.Alive && info.PID != self {
		return &LockedError{PID: info.PID}
	}
	if info.Exists && !info.Alive {
		logger.Info("Replacing stale lockfile", "path", l.path, "pid", info.PID)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}
	content := fmt.Sprintf("%d|%s\n", self, constants.AppName)
	if err := os.WriteFile(l.path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	return nil
}

// Release removes the lockfile if this process holds it.
func (l *Lock) Release() error {
	info, err := l.Status()
	if err != nil {
		return err
	}
	if !info.Exists || info.PID != getpidFunc() {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}
