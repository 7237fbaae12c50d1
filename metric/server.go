package metric

import (
	"fmt"
	"net"
	"strconv"

	streammetric "github.com/c360studio/semstreams/metric"
	"github.com/c360studio/semstreams/pkg/security"
)

// DefaultPath is where metrics are served.
const DefaultPath = "/metrics"

// NewRegistry creates a metrics registry with the document metrics
// registered alongside the platform and Go runtime collectors.
func NewRegistry() (*streammetric.MetricsRegistry, *Metrics, error) {
	reg := streammetric.NewMetricsRegistry()
	m := NewMetrics()
	if err := m.Register(reg); err != nil {
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}
	return reg, m, nil
}

// NewServer returns a metrics server for addr. The server listens on every
// interface, so only the port of addr is used.
func NewServer(addr string, reg *streammetric.MetricsRegistry) (*streammetric.Server, error) {
	port, err := ParsePort(addr)
	if err != nil {
		return nil, err
	}
	return streammetric.NewServer(port, DefaultPath, reg, security.Config{}), nil
}

// ParsePort extracts the port from ":9464", "host:9464" or "9464".
func ParsePort(addr string) (int, error) {
	portStr := addr
	if _, p, err := net.SplitHostPort(addr); err == nil {
		portStr = p
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid metrics address %q", addr)
	}
	return port, nil
}
