// Command navlint statically checks a declared navigation route table for
// the structural problems pkg/navigation's live invariants would otherwise
// only surface at runtime: duplicate children, unconfigured modal targets,
// and detours mistakenly double-registered as modal candidates.
//
// Usage:
//
//	navlint routes.yaml
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flow/pkg/navtools"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: navlint <route-table.yaml>")
		os.Exit(2)
	}

	table, err := navtools.LoadRouteTable(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	findings := navtools.Lint(table)
	for _, f := range findings {
		fmt.Println(f.String())
	}

	if navtools.HasErrors(findings) {
		os.Exit(1)
	}
}
