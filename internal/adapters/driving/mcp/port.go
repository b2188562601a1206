package mcp

import (
	"fmt"
	"net"
)

// Port range tried by AvailablePort when serving HTTP without an explicit port.
const (
	DefaultPortStart = 8760
	DefaultPortEnd   = 8799
)

// AvailablePort returns the first port in [start, end] that can be bound on
// the loopback interface.
func AvailablePort(start, end int) (int, error) {
	if start < 1 || end > 65535 || start > end {
		return 0, fmt.Errorf("invalid port range %d-%d", start, end)
	}
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}
