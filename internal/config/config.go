// Package config provides process configuration for the dogstatsd command.
package config

import (
	"flag"
	"os"

	"go.uber.org/zap"
)

// Config holds the settings for constructing a dogstatsd client.
type Config struct {
	LocalAddr     string // Local address to bind the sending socket to
	CollectorAddr string // Address of the Datadog agent
	Namespace     string // Prefix applied to every metric name
}

// Load parses command line flags and environment variables into a Config.
// Environment variables take precedence over flags. The returned slice holds
// the remaining non-flag arguments.
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("dogstatsd", flag.ContinueOnError)
	fs.StringVar(&cfg.LocalAddr, "l", "127.0.0.1:8126", "local address to bind the sending socket to")
	fs.StringVar(&cfg.CollectorAddr, "a", "127.0.0.1:8125", "dogstatsd collector address")
	fs.StringVar(&cfg.Namespace, "n", "", "namespace prefix for metric names")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	readEnvironment(cfg)

	return cfg, fs.Args(), nil
}

func readEnvironment(cfg *Config) {
	if addr := os.Getenv("DOGSTATSD_LOCAL_ADDR"); addr != "" {
		cfg.LocalAddr = addr
	}

	if addr := os.Getenv("DOGSTATSD_ADDR"); addr != "" {
		cfg.CollectorAddr = addr
	}

	if ns := os.Getenv("DOGSTATSD_NAMESPACE"); ns != "" {
		cfg.Namespace = ns
	}
}

// NewLogger builds the production logger the command hands to the client.
func NewLogger() *zap.SugaredLogger {
	return zap.Must(zap.NewProduction()).Sugar()
}
