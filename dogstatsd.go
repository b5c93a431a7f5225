/*
Package dogstatsd implements a client for the Dogstatsd wire protocol.

Dogstatsd is the StatsD dialect spoken by the Datadog agent: each UDP
datagram carries one metric or event as `name:value|type|#tag1,tag2`.
Through this client an application can report counters, gauges,
histograms, sets, timings and custom events, tag them, and never block
on the network while doing so.

Recording a metric must cost as little as possible on the application's
hot path, so the client is built around a single hand-off point:

  - every metric call renders its wire form into a pooled byte buffer
    (zero-allocation append serialization, no reflect)
  - the rendered datagram is submitted to a buffered queue with a
    non-blocking send; if the queue is full or the sender is gone the
    datagram is dropped and counted, never waited on
  - a single background goroutine owns the UDP socket, draining the
    queue and performing one socket write per datagram in submission
    order
  - buffers travel back from the sender to a pool and are reused

Delivery is best-effort end to end: UDP gives no guarantees, and the
client adds none — no retries, no acknowledgements, no flush on exit.
Construction is the only operation that can fail; every metric call
returns nothing.

Usage:

	client, err := dogstatsd.New("127.0.0.1:8125", dogstatsd.Namespace("analytics"))
	if err != nil {
		// local bind or collector address resolution failed
	}

	client.Incr("page.views", nil)
	client.Gauge("fuel.level", "0.5", []string{"tank:main"})
	client.Time("query.duration", nil, func() { measuredWork() })
	client.Event("Deploy", "Revision abc123 is live", []string{"env:prod"})
*/
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
