package main

import (
	"context"
	"net"
	"sync/atomic"
	"time"
)

// dialerKeepAlive maps the optional keep-alive interval onto
// net.Dialer semantics, where a negative value turns TCP keep-alive
// probes off entirely.
func dialerKeepAlive(interval *time.Duration) time.Duration {
	if interval == nil {
		return -1
	}
	return *interval
}

type countingConn struct {
	net.Conn
	bytesRead, bytesWritten *int64
}

func (cc *countingConn) Read(bs []byte) (int, error) {
	n, err := cc.Conn.Read(bs)
	if err == nil {
		atomic.AddInt64(cc.bytesRead, int64(n))
	}
	return n, err
}

func (cc *countingConn) Write(bs []byte) (int, error) {
	n, err := cc.Conn.Write(bs)
	if err == nil {
		atomic.AddInt64(cc.bytesWritten, int64(n))
	}
	return n, err
}

var fasthttpDialFunc = func(
	bytesRead, bytesWritten *int64, dialTimeout, keepAlive time.Duration,
) func(string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: dialTimeout, KeepAlive: keepAlive}
	return func(address string) (net.Conn, error) {
		conn, err := dialer.Dial("tcp", address)
		if err != nil {
			return nil, err
		}
		wrappedConn := &countingConn{conn, bytesRead, bytesWritten}
		return wrappedConn, nil
	}
}

var httpDialContextFunc = func(
	bytesRead, bytesWritten *int64, dialTimeout, keepAlive time.Duration,
) func(context.Context, string, string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: dialTimeout, KeepAlive: keepAlive}
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		wrappedConn := &countingConn{conn, bytesRead, bytesWritten}
		return wrappedConn, nil
	}
}
