// Command dogstatsd submits a single metric or event to a dogstatsd
// collector from the command line.
//
// Usage:
//
//	dogstatsd [-a collector] [-l local] [-n namespace] <type> <stat> <value> [tags...]
//
// Types: incr, decr, gauge, histogram, set, timing, event. For events the
// stat argument is the title and the value argument is the body.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	dogstatsd "github.com/smira/go-dogstatsd"
	"github.com/smira/go-dogstatsd/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.Load(args)
	if err != nil {
		return err
	}

	if len(rest) < 3 {
		return fmt.Errorf("usage: dogstatsd [flags] <type> <stat> <value> [tags...]")
	}

	kind, stat, value, tags := rest[0], rest[1], rest[2], rest[3:]

	logger := config.NewLogger()
	defer func() { _ = logger.Sync() }()

	client, err := dogstatsd.New(cfg.CollectorAddr,
		dogstatsd.LocalAddress(cfg.LocalAddr),
		dogstatsd.Namespace(cfg.Namespace),
		dogstatsd.Logger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	switch kind {
	case "incr":
		amount, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing counter amount: %w", err)
		}
		client.IncrBy(stat, amount, tags)
	case "decr":
		amount, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing counter amount: %w", err)
		}
		client.DecrBy(stat, amount, tags)
	case "gauge":
		client.Gauge(stat, value, tags)
	case "histogram":
		client.Histogram(stat, value, tags)
	case "set":
		client.Set(stat, value, tags)
	case "timing":
		ms, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing timing milliseconds: %w", err)
		}
		client.Timing(stat, ms, tags)
	case "event":
		client.Event(stat, value, tags)
	default:
		return fmt.Errorf("unknown metric type %q", kind)
	}

	// Close abandons queued datagrams, give the sender a moment to drain
	// the one-shot submission before tearing the client down
	time.Sleep(100 * time.Millisecond)

	return nil
}
