// Command charsetgen turns a character-set table document into Go source: an
// enumeration type with one constant per entry and the entry array backing a
// charsets.Registry.
//
//	charsetgen -pkg iana -o tables.go character-sets.yaml
//	charsetgen -check custom.toml
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reoring/charsets"
	gen "github.com/reoring/charsets/internal/gen"
	"github.com/reoring/charsets/table"
)

func main() {
	fs := flag.NewFlagSet("charsetgen", flag.ExitOnError)
	var (
		pkg     string
		typ     string
		out     string
		check   bool
		verbose bool
	)
	fs.StringVar(&pkg, "pkg", "", "package name (default: $GOPACKAGE or the package in the current directory)")
	fs.StringVar(&typ, "type", "ID", "enumeration type name")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&check, "check", false, "validate the table and exit")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	fs.Usage = usage
	_ = fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	src := fs.Arg(0)

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	entries, err := table.ReadFile(src, table.FormatAuto)
	if err != nil {
		fatalf("reading table: %v", err)
	}
	logf("read %d entries from %s", len(entries), src)

	reg, err := charsets.NewRegistry(entries)
	if err != nil {
		if iss, ok := charsets.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s: %s at %s: %s\n", src, it.Code, it.Path, it.Message)
			}
			os.Exit(1)
		}
		fatalf("invalid table: %v", err)
	}
	logf("registry ok: %d records, %d match keys", reg.Len(), len(reg.MatchKeys()))
	if check {
		return
	}

	if pkg == "" {
		pkg = detectPackageName()
	}
	if pkg == "" {
		fatalf("cannot detect package name; pass -pkg")
	}
	code, err := gen.RenderFile(gen.File{
		Package: pkg,
		Type:    typ,
		Source:  filepath.Base(src),
		Entries: entries,
	})
	if err != nil {
		fatalf("generate: %v", err)
	}

	if out == "" {
		_, _ = os.Stdout.Write(code)
		return
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fatalf("creating output dir: %v", err)
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
	logf("wrote %s (package %s, %d bytes)", out, pkg, len(code))
}

func usage() {
	fmt.Fprintln(os.Stderr, "charsetgen\n\nUsage:\n  charsetgen [-pkg name] [-type ID] [-o out.go] [-v] table.{yaml,json,toml}\n  charsetgen -check table.{yaml,json,toml}\n\nNotes:\n  - Every entry needs an id; it becomes the Go constant name.")
}

func detectPackageName() string {
	if p := os.Getenv("GOPACKAGE"); p != "" {
		return p
	}
	cmd := exec.Command("go", "list", "-f", "{{.Name}}")
	cmd.Env = os.Environ()
	cmd.Dir = "."
	out, err := cmd.CombinedOutput()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
