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
	"strconv"
	"time"
)

type metricKind int

const (
	kindIncr metricKind = iota
	kindDecr
	kindGauge
	kindHistogram
	kindSet
	kindTiming
	kindElapsed
	kindEvent
)

// metric is a single metric or event captured at the call site, ready to be
// rendered into its wire form. metric values are immutable and live for one
// render/submit cycle only.
//
// Rendering is total: empty stats, negative durations and non-ASCII payloads
// are all rendered as-is. Stats and tags containing the protocol delimiters
// (':', '|', ',') are not escaped and produce malformed datagrams.
type metric struct {
	kind   metricKind
	stat   string
	value  string // gauge/histogram/set payload, event text
	title  string // events only
	amount uint64 // counters
	ms     int64  // explicit timings
	start  time.Time
	end    time.Time
}

func incrMetric(stat string, amount uint64) metric {
	return metric{kind: kindIncr, stat: stat, amount: amount}
}

func decrMetric(stat string, amount uint64) metric {
	return metric{kind: kindDecr, stat: stat, amount: amount}
}

func gaugeMetric(stat, value string) metric {
	return metric{kind: kindGauge, stat: stat, value: value}
}

func histogramMetric(stat, value string) metric {
	return metric{kind: kindHistogram, stat: stat, value: value}
}

func setMetric(stat, value string) metric {
	return metric{kind: kindSet, stat: stat, value: value}
}

func timingMetric(stat string, ms int64) metric {
	return metric{kind: kindTiming, stat: stat, ms: ms}
}

func elapsedMetric(stat string, start, end time.Time) metric {
	return metric{kind: kindElapsed, stat: stat, start: start, end: end}
}

func eventMetric(title, text string) metric {
	return metric{kind: kindEvent, title: title, value: text}
}

// render appends the bare metric body, without namespace or tags.
//
// my_count:42|c
// my_count:-42|c
// my_gauge:1000|g
// _e{5,4}:Title|Body
func (m metric) render(buf []byte) []byte {
	switch m.kind {
	case kindIncr:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = strconv.AppendUint(buf, m.amount, 10)
		buf = append(buf, "|c"...)
	case kindDecr:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		// decrement of zero carries no sign
		if m.amount > 0 {
			buf = append(buf, '-')
		}
		buf = strconv.AppendUint(buf, m.amount, 10)
		buf = append(buf, "|c"...)
	case kindGauge:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = append(buf, m.value...)
		buf = append(buf, "|g"...)
	case kindHistogram:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = append(buf, m.value...)
		buf = append(buf, "|h"...)
	case kindSet:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = append(buf, m.value...)
		buf = append(buf, "|s"...)
	case kindTiming:
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, m.ms, 10)
		buf = append(buf, "|ms"...)
	case kindElapsed:
		// truncated toward zero; end before start renders negative
		buf = append(buf, m.stat...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, m.end.Sub(m.start).Milliseconds(), 10)
		buf = append(buf, "|ms"...)
	case kindEvent:
		// lengths are byte lengths of the raw strings, the collector
		// slices title and body out of the payload by those counts
		buf = append(buf, "_e{"...)
		buf = strconv.AppendInt(buf, int64(len(m.title)), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(len(m.value)), 10)
		buf = append(buf, "}:"...)
		buf = append(buf, m.title...)
		buf = append(buf, '|')
		buf = append(buf, m.value...)
	}

	return buf
}

// renderNamespace appends the metric body prefixed with "namespace.".
//
// Events never take the namespace: their header declares the byte lengths of
// title and body, and a prefix would desynchronize header and content.
func (m metric) renderNamespace(buf []byte, namespace string) []byte {
	if namespace != "" && m.kind != kindEvent {
		buf = append(buf, namespace...)
		buf = append(buf, '.')
	}

	return m.render(buf)
}

// renderFull appends the complete datagram: namespaced body plus
// "|#tag1,tag2,..." when tags are present. Tag order is preserved, tags are
// not deduplicated or escaped.
func (m metric) renderFull(buf []byte, namespace string, tags []string) []byte {
	buf = m.renderNamespace(buf, namespace)

	if len(tags) == 0 {
		return buf
	}

	buf = append(buf, "|#"...)
	for i, tag := range tags {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, tag...)
	}

	return buf
}
