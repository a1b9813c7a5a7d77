// Package navtools provides offline tooling for the navigation coordinator
// engine: a YAML-decodable description of a coordinator tree's static shape,
// and a linter that checks it for the same structural problems the live
// engine's invariants would reject at runtime.
//
// None of this package executes the navigate algorithm in pkg/navigation; it
// only reasons about the declared shape of a tree, so a host can catch a
// malformed deep-link table before wiring a single Coordinator.
package navtools

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeKind classifies how a RouteNode attaches to its parent in a RouteTable,
// mirroring navigation.PresentationContext.
type NodeKind string

const (
	KindRoot   NodeKind = "root"
	KindTab    NodeKind = "tab"
	KindPushed NodeKind = "pushed"
	KindModal  NodeKind = "modal"
	KindDetour NodeKind = "detour"
)

// RouteNode is one coordinator in a declared tree.
type RouteNode struct {
	// ID is the route identifier this node's router is rooted at.
	ID string `yaml:"id"`
	// Kind is how this node is presented by its parent. The top-level
	// node(s) in a RouteTable are expected to be KindRoot.
	Kind NodeKind `yaml:"kind"`
	// ModalTargets lists the route identifiers this node's registered
	// modal coordinators can present, for KindRoot/KindTab/KindPushed
	// nodes that own modal candidates.
	ModalTargets []string `yaml:"modalTargets,omitempty"`
	// Children are the nodes attached under this one.
	Children []RouteNode `yaml:"children,omitempty"`
}

// RouteTable is the root of a declared coordinator tree.
type RouteTable struct {
	Roots []RouteNode `yaml:"roots"`
}

// LoadRouteTable reads and parses a route table from a YAML file.
func LoadRouteTable(path string) (RouteTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouteTable{}, fmt.Errorf("navtools: read %s: %w", path, err)
	}
	var table RouteTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return RouteTable{}, fmt.Errorf("navtools: parse %s: %w", path, err)
	}
	return table, nil
}
