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

import "go.uber.org/zap"

// Default settings
const (
	// DefaultLocalAddress is the local address the sending socket binds to
	DefaultLocalAddress = "127.0.0.1:8126"
	// DefaultCollectorAddress is the address of the Datadog agent
	DefaultCollectorAddress = "127.0.0.1:8125"
	// DefaultSendQueueCapacity is the number of rendered datagrams the
	// hand-off queue holds before submissions are dropped
	DefaultSendQueueCapacity = 4096
	// DefaultBufPoolCapacity is the number of reusable datagram buffers
	DefaultBufPoolCapacity = 64
)

// ClientOptions are dogstatsd client settings
type ClientOptions struct {
	// Addr is the collector address ("host:port") datagrams are sent to
	Addr string

	// LocalAddr is the local address the sending socket binds to
	LocalAddr string

	// Namespace is joined with '.' in front of every metric stat name;
	// events are never namespaced
	Namespace string

	// Logger is used for the two observability hooks (metric queued,
	// metric dropped); defaults to a no-op logger
	Logger *zap.SugaredLogger

	// SendQueueCapacity is the size of the hand-off queue between metric
	// calls and the sender goroutine
	SendQueueCapacity int

	// BufPoolCapacity is the size of the datagram buffer pool
	BufPoolCapacity int
}

// Option is a function which applies a single option to the ClientOptions
// structure
type Option func(*ClientOptions)

// LocalAddress sets the local address to bind the sending socket to
func LocalAddress(addr string) Option {
	return func(o *ClientOptions) {
		o.LocalAddr = addr
	}
}

// Namespace sets the prefix joined with '.' in front of every metric name
func Namespace(namespace string) Option {
	return func(o *ClientOptions) {
		o.Namespace = namespace
	}
}

// Logger sets the logger receiving the queued/dropped signals
func Logger(logger *zap.SugaredLogger) Option {
	return func(o *ClientOptions) {
		o.Logger = logger
	}
}

// SendQueueCapacity sets the capacity of the hand-off queue
func SendQueueCapacity(capacity int) Option {
	return func(o *ClientOptions) {
		o.SendQueueCapacity = capacity
	}
}

// BufPoolCapacity sets the capacity of the datagram buffer pool
func BufPoolCapacity(capacity int) Option {
	return func(o *ClientOptions) {
		o.BufPoolCapacity = capacity
	}
}
