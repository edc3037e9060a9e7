// npfdemo is a small command-line front end over package npf: a
// coreutils-printf-style tool when given a format string and arguments,
// and a guided tour of the engine's feature surface (bounded buffers,
// %n writeback, raw-fd sinks) when given none.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/xyproto/npf"
)

const versionString = "npfdemo 0.1.0"

var VerboseMode bool

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [format arg...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  with no format, runs a feature demo instead\n\n")
	flag.PrintDefaults()
}

func main() {
	defaults, err := envDefaults()
	if err != nil {
		report(err)
		os.Exit(1)
	}

	bufSize := flag.Int("bufsize", defaults.bufSize, "Snprintf demo buffer size in bytes")
	raw := flag.Bool("raw", defaults.raw, "write through a raw file-descriptor sink (unix.Write) instead of os.Stdout")
	fd := flag.Int("fd", defaults.fd, "file descriptor RawFDSink targets when -raw is set")
	verbose := flag.Bool("v", defaults.verbose, "verbose mode: print npfdemo's own diagnostics to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	VerboseMode = *verbose

	if *showVersion {
		fmt.Println(versionString)
		return
	}

	cfg := demoConfig{bufSize: *bufSize, raw: *raw, fd: *fd, verbose: *verbose}
	if err := cfg.validate(); err != nil {
		report(err)
		os.Exit(1)
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "npfdemo: bufsize=%d raw=%v fd=%d\n", cfg.bufSize, cfg.raw, cfg.fd)
	}

	args := flag.Args()
	if len(args) == 0 {
		runFeatureDemo(cfg)
		return
	}

	format := args[0]
	values := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		values = append(values, coerce(a))
	}

	if cfg.raw {
		sink := npf.NewRawFDSink(cfg.fd)
		npf.Pprintf(sink, format+"\n", values...)
		sink.Flush()
		return
	}
	fmt.Print(npf.Sprintf(format+"\n", values...))
}

// coerce turns one shell argument into the most specific type npf's
// argument cursor can consume: an int64 if it parses as a plain decimal
// integer, a float64 if it parses as a float, otherwise the original
// string. This mirrors what a variadic C caller would have done by
// picking the matching printf conversion ahead of time — npfdemo instead
// infers it, since its arguments arrive as untyped command-line text.
func coerce(a string) any {
	if i, err := strconv.ParseInt(a, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(a, 64); err == nil {
		return f
	}
	return a
}

func report(err error) {
	fmt.Fprintf(os.Stderr, "npfdemo: %v\n", err)
}

// runFeatureDemo exercises the conversions a bare `npfdemo` invocation
// (no format string) is meant to showcase: signed/unsigned/hex/binary
// integers, floats in all four flavors, the bounded-buffer Snprintf
// contract, %n writeback, and (when -raw is set) the RawFDSink path.
func runFeatureDemo(cfg demoConfig) {
	fmt.Println(npf.Sprintf("%-12s %s", "decimal:", npf.Sprintf("%+05d", 42)))
	fmt.Println(npf.Sprintf("%-12s %s", "hex:", npf.Sprintf("%#x", 0xABCD)))
	fmt.Println(npf.Sprintf("%-12s %s", "binary:", npf.Sprintf("%#b", 22)))
	fmt.Println(npf.Sprintf("%-12s %s", "float:", npf.Sprintf("%.3f", 3.14159)))
	fmt.Println(npf.Sprintf("%-12s %s", "scientific:", npf.Sprintf("%e", 1234.5678)))
	fmt.Println(npf.Sprintf("%-12s %s", "shortest:", npf.Sprintf("%g", 0.0001234)))

	var n int
	out := npf.Sprintf("count so far is%n", &n)
	fmt.Println(npf.Sprintf("%-12s %q wrote %d bytes before %%n fired", "writeback:", out, n))

	buf := make([]byte, cfg.bufSize)
	wouldWrite := npf.Snprintf(buf, "%s is a %d-byte demo buffer", "this", cfg.bufSize)
	fmt.Println(npf.Sprintf("%-12s wrote %d of %d bytes requested", "snprintf:", min(wouldWrite, len(buf)-1), wouldWrite))

	if cfg.raw {
		sink := npf.NewRawFDSink(cfg.fd)
		npf.Pprintf(sink, "%-12s via unix.Write on fd %d\n", "raw sink:", cfg.fd)
		sink.Flush()
	}
}
