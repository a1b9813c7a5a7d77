package navtools

import "fmt"

// Severity classifies a Finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one structural problem Lint detected in a RouteTable.
type Finding struct {
	Severity Severity
	Path     string // dotted path of route identifiers from a root to the offending node
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Path, f.Message)
}

// Lint walks a declared RouteTable and reports structural problems that
// mirror the live engine's structural invariants (pkg/navigation):
//
//   - a node listed twice under the same parent (duplicate child).
//   - a node listed twice in one node's own ModalTargets.
//   - a KindModal node whose id does not appear in its parent's
//     ModalTargets (other ancestors are not consulted) — the declared-shape
//     analogue of
//     ModalCoordinatorNotConfigured.
//   - a node that is both a ModalTarget of its parent and declared
//     KindDetour — detours are never reached through the modal-presentation
//     path, so this is always a configuration mistake.
//
// More than one KindModal child under the same parent is not flagged:
// modalCoordinators is an ordered sequence of registered candidates, and a
// coordinator legitimately registers several (e.g. success/failure), with
// only one ever live at runtime — that cardinality is a runtime concern,
// not a declared-shape one.
//
// Lint never mutates table and never constructs a live coordinator tree; it
// only reasons about the shape that was declared.
func Lint(table RouteTable) []Finding {
	var findings []Finding
	for _, root := range table.Roots {
		if root.Kind != "" && root.Kind != KindRoot {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Path:     root.ID,
				Message:  fmt.Sprintf("top-level node declared kind %q, expected %q", root.Kind, KindRoot),
			})
		}
		findings = append(findings, lintChildren(root.ID, root)...)
	}
	return findings
}

func lintChildren(path string, node RouteNode) []Finding {
	var findings []Finding

	seenTargets := make(map[string]bool, len(node.ModalTargets))
	for _, target := range node.ModalTargets {
		if seenTargets[target] {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Path:     path,
				Message:  fmt.Sprintf("%q is listed more than once in %q's modalTargets", target, path),
			})
		}
		seenTargets[target] = true
	}

	seen := make(map[string]bool, len(node.Children))
	for _, child := range node.Children {
		childPath := path + "." + child.ID
		if seen[child.ID] {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Path:     childPath,
				Message:  "duplicate child identifier under parent " + path,
			})
		}
		seen[child.ID] = true

		switch child.Kind {
		case KindModal:
			if !contains(node.ModalTargets, child.ID) {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Path:     childPath,
					Message:  fmt.Sprintf("modal node %q is not listed in parent %q's modalTargets", child.ID, path),
				})
			}
		case KindDetour:
			if contains(node.ModalTargets, child.ID) {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Path:     childPath,
					Message:  fmt.Sprintf("detour node %q also appears in parent %q's modalTargets; detours are entered explicitly, never through modal presentation", child.ID, path),
				})
			}
		}

		findings = append(findings, lintChildren(childPath, child)...)
	}

	return findings
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// HasErrors reports whether findings contains at least one SeverityError.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
