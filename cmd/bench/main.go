// bench - smoljson parse/serialize benchmark runner
//
// Times Parse and Serialize separately over one or more JSON files and
// reports per-file and total results. The round-tripped output of each file
// can be written back out for diffing against the input.
//
// Usage:
//
//	bench [--repeat=N] [--out=FILE] file.json [more.json ...]
//
// The two phases are separate functions so they show up cleanly in profiles
// and flamegraphs.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/smoljson/smoljson/smoljson"
)

type caseResult struct {
	Name          string
	InBytes       int
	OutBytes      int
	ParseTime     time.Duration
	SerializeTime time.Duration
}

func main() {
	repeat := 1
	outFile := ""
	var files []string

	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, "--repeat="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--repeat="))
			if err != nil || n < 1 {
				fatal("bad --repeat value: %s", arg)
			}
			repeat = n
		case strings.HasPrefix(arg, "--out="):
			outFile = strings.TrimPrefix(arg, "--out=")
		case strings.HasPrefix(arg, "-"):
			fatal("unknown flag: %s", arg)
		default:
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bench [--repeat=N] [--out=FILE] file.json [more.json ...]")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "smoljson benchmark runner\n")
	fmt.Fprintf(os.Stderr, "=========================\n")
	fmt.Fprintf(os.Stderr, "files: %d, repetitions: %d\n\n", len(files), repeat)

	var results []caseResult
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", file, err)
			continue
		}

		input := string(data)
		var v *smoljson.Value
		var out string
		var parseTotal, serializeTotal time.Duration

		for i := 0; i < repeat; i++ {
			v, parseTotal = parseTimed(input, parseTotal)
			out, serializeTotal = serializeTimed(v, serializeTotal)
		}

		results = append(results, caseResult{
			Name:          file,
			InBytes:       len(input),
			OutBytes:      len(out),
			ParseTime:     parseTotal / time.Duration(repeat),
			SerializeTime: serializeTotal / time.Duration(repeat),
		})

		if outFile != "" {
			if err := os.WriteFile(outFile, []byte(out), 0o644); err != nil {
				fatal("write %s: %v", outFile, err)
			}
			// Only the first file is round-tripped to disk.
			outFile = ""
		}
	}

	if len(results) == 0 {
		fatal("no usable input files")
	}

	fmt.Printf("%-30s %12s %12s %14s %14s\n", "file", "in", "out", "parse", "serialize")
	var totalIn, totalOut int
	var totalParse, totalSerialize time.Duration
	for _, r := range results {
		fmt.Printf("%-30s %12s %12s %14s %14s\n",
			r.Name,
			humanize.Bytes(uint64(r.InBytes)),
			humanize.Bytes(uint64(r.OutBytes)),
			r.ParseTime, r.SerializeTime)
		totalIn += r.InBytes
		totalOut += r.OutBytes
		totalParse += r.ParseTime
		totalSerialize += r.SerializeTime
	}
	fmt.Printf("%-30s %12s %12s %14s %14s\n",
		"total",
		humanize.Bytes(uint64(totalIn)),
		humanize.Bytes(uint64(totalOut)),
		totalParse, totalSerialize)
}

func parseTimed(input string, total time.Duration) (*smoljson.Value, time.Duration) {
	start := time.Now()
	v, err := smoljson.Parse(input)
	if err != nil {
		fatal("parse: %v", err)
	}
	return v, total + time.Since(start)
}

func serializeTimed(v *smoljson.Value, total time.Duration) (string, time.Duration) {
	start := time.Now()
	out := v.Serialize()
	return out, total + time.Since(start)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "bench: "+format+"\n", args...)
	os.Exit(1)
}
