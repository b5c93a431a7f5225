package dogstatsd

/*

Copyright (c) 2017 Andrey Smirnov

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// BindError is returned by New when the local sending socket can't be bound.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("dogstatsd: binding local socket %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// ResolutionError is returned by New when the collector address can't be
// resolved.
type ResolutionError struct {
	Addr string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("dogstatsd: resolving collector address %s: %v", e.Addr, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Client implements a dogstatsd client
//
// A Client is safe for concurrent use by any number of goroutines. Every
// metric method renders one datagram and submits it to the hand-off queue
// without blocking; the background sender goroutine owns the socket and is
// the only code path writing to the network.
type Client struct {
	options ClientOptions

	conn  *net.UDPConn
	raddr *net.UDPAddr

	bufPool   chan []byte
	sendQueue chan []byte

	shutdown   chan struct{}
	senderDone chan struct{}
	closeOnce  sync.Once

	lostPacketsOverall int64
}

// New creates a dogstatsd client and starts the background sender goroutine
//
// Client sends datagrams to the collector at addr ("host:port"); if addr is
// empty, DefaultCollectorAddress is used.
//
// Client settings could be controlled via functions of type Option.
//
// New fails with *ResolutionError if the collector address can't be resolved
// and with *BindError if the local sending socket can't be bound; these are
// the only errors the client ever reports.
func New(addr string, options ...Option) (*Client, error) {
	c := &Client{
		options: ClientOptions{
			Addr:              addr,
			LocalAddr:         DefaultLocalAddress,
			Logger:            zap.NewNop().Sugar(),
			SendQueueCapacity: DefaultSendQueueCapacity,
			BufPoolCapacity:   DefaultBufPoolCapacity,
		},

		shutdown:   make(chan struct{}),
		senderDone: make(chan struct{}),
	}

	for _, option := range options {
		option(&c.options)
	}

	if c.options.Addr == "" {
		c.options.Addr = DefaultCollectorAddress
	}

	raddr, err := net.ResolveUDPAddr("udp", c.options.Addr)
	if err != nil {
		return nil, &ResolutionError{Addr: c.options.Addr, Err: err}
	}

	laddr, err := net.ResolveUDPAddr("udp", c.options.LocalAddr)
	if err != nil {
		return nil, &BindError{Addr: c.options.LocalAddr, Err: err}
	}

	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, &BindError{Addr: c.options.LocalAddr, Err: err}
	}

	c.conn = conn
	c.raddr = raddr
	c.bufPool = make(chan []byte, c.options.BufPoolCapacity)
	c.sendQueue = make(chan []byte, c.options.SendQueueCapacity)

	go c.sendLoop()

	return c, nil
}

// Close stops the sender goroutine and closes the socket
//
// Datagrams still sitting in the hand-off queue are abandoned, matching the
// best-effort delivery contract. Metric calls after Close are safe and count
// as lost packets.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.shutdown)
	})
	<-c.senderDone

	return nil
}

// GetLostPackets returns the number of datagrams dropped at submission
// during the client lifecycle
func (c *Client) GetLostPackets() int64 {
	return atomic.LoadInt64(&c.lostPacketsOverall)
}

// send renders the datagram and hands it off to the sender goroutine
//
// Submission never blocks and never fails the caller: when the queue is full
// or the sender has terminated, the datagram is dropped, counted and logged.
func (c *Client) send(m metric, tags []string) {
	buf := m.renderFull(c.getBuf(), c.options.Namespace, tags)

	select {
	case <-c.senderDone:
		atomic.AddInt64(&c.lostPacketsOverall, 1)
		c.options.Logger.Warnw("unable to send metric to dogstatsd, sender is gone")
		return
	default:
	}

	select {
	case c.sendQueue <- buf:
		c.options.Logger.Debugw("queued metric for dogstatsd")
	default:
		atomic.AddInt64(&c.lostPacketsOverall, 1)
		c.options.Logger.Warnw("unable to send metric to dogstatsd, queue is full")
	}
}

// Incr increments a counter by one
//
// Often used to note a particular event
func (c *Client) Incr(stat string, tags []string) {
	c.IncrBy(stat, 1, tags)
}

// IncrBy increments a counter by a fixed amount
func (c *Client) IncrBy(stat string, amount uint64, tags []string) {
	c.send(incrMetric(stat, amount), tags)
}

// Decr decrements a counter by one
func (c *Client) Decr(stat string, tags []string) {
	c.DecrBy(stat, 1, tags)
}

// DecrBy decrements a counter by a fixed amount
func (c *Client) DecrBy(stat string, amount uint64, tags []string) {
	c.send(decrMetric(stat, amount), tags)
}

// Gauge reports an arbitrary value as a gauge
//
// Gauges are a constant data type: once set, the value holds until it is
// set again.
func (c *Client) Gauge(stat string, value string, tags []string) {
	c.send(gaugeMetric(stat, value), tags)
}

// Histogram reports a sample of a histogram
func (c *Client) Histogram(stat string, value string, tags []string) {
	c.send(histogramMetric(stat, value), tags)
}

// Set adds a member to a set
func (c *Client) Set(stat string, value string, tags []string) {
	c.send(setMetric(stat, value), tags)
}

// Timing reports a duration event, the time delta must be given in
// milliseconds; negative deltas are rendered as-is
func (c *Client) Timing(stat string, ms int64, tags []string) {
	c.send(timingMetric(stat, ms), tags)
}

// Time runs block synchronously and reports its wall-clock duration in
// milliseconds
//
// A panic inside block propagates to the caller and no metric is reported.
func (c *Client) Time(stat string, tags []string, block func()) {
	start := time.Now()
	block()
	c.send(elapsedMetric(stat, start, time.Now()), tags)
}

// Event sends a custom event as a title and a body
//
// Events are never prefixed with the client namespace.
func (c *Client) Event(title string, text string, tags []string) {
	c.send(eventMetric(title, text), tags)
}
