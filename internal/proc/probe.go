// Package proc reads the supervised server process's state. The
// console never starts or stops the process; it only observes it.
package proc

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ashureev/console-gate/internal/domain"
)

const probeTimeout = 2 * time.Second

// TCPProbe reports the process as running when its listen address
// accepts a TCP connection.
type TCPProbe struct {
	host string
	port int
}

// NewTCPProbe creates a probe for the process listening on host:port.
func NewTCPProbe(host string, port int) *TCPProbe {
	return &TCPProbe{host: host, port: port}
}

// Status dials the process's address. A refused or timed-out dial is a
// normal "not running" result, not an error; errors are reserved for
// states the probe cannot interpret.
func (p *TCPProbe) Status() (domain.ProcessStatus, error) {
	if p.port <= 0 || p.port > 65535 {
		return domain.ProcessStatus{}, fmt.Errorf("probe misconfigured: port %d", p.port)
	}

	addr := net.JoinHostPort(p.host, strconv.Itoa(p.port))
	now := time.Now()

	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		return domain.ProcessStatus{
			Running:    false,
			ServerPort: p.port,
			Address:    addr,
			CheckedAt:  now,
		}, nil
	}
	_ = conn.Close()

	return domain.ProcessStatus{
		Running:    true,
		ServerPort: p.port,
		Address:    addr,
		CheckedAt:  now,
	}, nil
}
