package main

import "github.com/xyproto/env/v2"

// demoConfig gathers npfdemo's runtime knobs: flags win when explicitly
// given, otherwise an environment variable fallback, otherwise a
// hard-coded default.
type demoConfig struct {
	bufSize int  // Snprintf demo buffer size in bytes
	raw     bool // drive RawFDSink instead of os.Stdout
	fd      int  // file descriptor RawFDSink targets when raw is set
	verbose bool
}

// defaultBufSize/defaultFD mirror flag.Int/flag.Bool's own defaults; they
// exist as named constants so envDefaults and the flag declarations agree
// on one source of truth.
const (
	defaultBufSize = 256
	defaultFD      = 1 // stdout
)

// envDefaults reads the NPFDEMO_* environment variables npfdemo honors,
// falling back to the package defaults above when unset. A bad
// NPFDEMO_BUFSZ (e.g. negative) is rejected here rather than left to
// surface later as a confusing flag-default error, since the flag
// itself was never touched.
func envDefaults() (demoConfig, error) {
	c := demoConfig{
		bufSize: env.IntOr("NPFDEMO_BUFSZ", defaultBufSize),
		raw:     env.BoolOr("NPFDEMO_RAW_FD", false),
		fd:      defaultFD,
		verbose: env.BoolOr("NPFDEMO_VERBOSE", false),
	}
	if c.bufSize <= 0 {
		return demoConfig{}, envError("NPFDEMO_BUFSZ must be positive, got %d", c.bufSize)
	}
	return c, nil
}

// validate rejects configurations the demo can't act on sensibly. It
// never rejects anything internal/engine itself would accept — these
// are CLI-usability guards, not format-string validation.
func (c demoConfig) validate() error {
	if c.bufSize <= 0 {
		return flagError("-bufsize must be positive, got %d", c.bufSize)
	}
	if c.fd < 0 {
		return flagError("-fd must be non-negative, got %d", c.fd)
	}
	return nil
}
