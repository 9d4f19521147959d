// Package instance keeps a single picker UI running per machine by holding
// a loopback TCP port for the life of the process.
package instance

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

// Lock is a held instance lock
type Lock struct {
	listener net.Listener
	once     sync.Once
}

// Acquire takes the lock on 127.0.0.1:port. Port 0 picks a free port.
// A second caller gets a FailedPrecondition error while the lock is held.
func Acquire(port int) (*Lock, error) {
	if port < 0 || port > 65535 {
		return nil, errors.InvalidArgumentf("port out of range: %d", port)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "another picker is already running").
			WithMeta("addr", addr)
	}

	slog.Debug("Instance lock acquired", "addr", listener.Addr().String())
	return &Lock{listener: listener}, nil
}

// Addr returns the held address
func (l *Lock) Addr() string {
	return l.listener.Addr().String()
}

// Port returns the held port
func (l *Lock) Port() int {
	return l.listener.Addr().(*net.TCPAddr).Port
}

// Release frees the port. It is safe to call more than once.
func (l *Lock) Release() error {
	var err error
	l.once.Do(func() {
		err = l.listener.Close()
	})
	if err != nil {
		return errors.Wrap(err, "failed to release instance lock")
	}
	return nil
}
