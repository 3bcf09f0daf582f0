package netprobe

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// Dialer reports the network as online when a TCP connection to address succeeds.
type Dialer struct {
	address string
	timeout time.Duration
	dialer  *net.Dialer
	log     *slog.Logger
}

// New creates a Dialer probing address ("host:port") with the given timeout.
func New(address string, timeout time.Duration, logger *slog.Logger) *Dialer {
	return &Dialer{
		address: address,
		timeout: timeout,
		dialer:  &net.Dialer{},
		log:     logger.With("adapter", "netprobe"),
	}
}

// Online dials the probe address and closes the connection immediately.
func (d *Dialer) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	conn, err := d.dialer.DialContext(ctx, "tcp", d.address)
	if err != nil {
		d.log.WarnContext(ctx, "connectivity probe failed",
			slog.String("address", d.address),
			slog.String("error", err.Error()),
		)
		return false
	}
	conn.Close()
	return true
}
