// smoljson - JSON value tool
//
// Usage:
//
//	smoljson check [file]        Parse and report ok or the parse error
//	smoljson fmt [file]          Parse and re-emit as compact JSON
//	smoljson get <path> [file]   Print the value at a dot-separated path
//	smoljson version             Print version info
//
// Paths are dot-separated; numeric segments index into arrays:
//
//	smoljson get users.1.name doc.json
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/smoljson/smoljson/smoljson"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "check":
		v, err := parseInput(fileArg(os.Args[2:]))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("ok: %s value\n", v.Kind())

	case "fmt":
		v, err := parseInput(fileArg(os.Args[2:]))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(v.Serialize())

	case "get":
		if len(os.Args) < 3 {
			fatal("get: missing path argument")
		}
		path := os.Args[2]
		v, err := parseInput(fileArg(os.Args[3:]))
		if err != nil {
			fatal("%v", err)
		}
		got, err := lookup(v, path)
		if err != nil {
			fatal("get %s: %v", path, err)
		}
		fmt.Println(got.String())

	case "version":
		fmt.Printf("smoljson %s\n", version)

	default:
		fmt.Fprintf(os.Stderr, "smoljson: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// lookup walks a dot-separated path using the strict accessors, so a wrong
// kind or missing entry reports instead of vivifying.
func lookup(v *smoljson.Value, path string) (*smoljson.Value, error) {
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if idx, err := strconv.Atoi(seg); err == nil && v.IsArray() {
			next, err := v.TryIndex(idx)
			if err != nil {
				return nil, err
			}
			v = next
			continue
		}
		next, err := v.TryKey(seg)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

func fileArg(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") && arg != "-" {
			return arg
		}
	}
	return ""
}

func parseInput(file string) (*smoljson.Value, error) {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return smoljson.Parse(string(data))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "smoljson: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `smoljson - JSON value tool

Usage:
  smoljson check [file]        Parse and report ok or the parse error
  smoljson fmt [file]          Parse and re-emit as compact JSON
  smoljson get <path> [file]   Print the value at a dot-separated path
  smoljson version             Print version info

If no file is given, reads from stdin.`)
}
