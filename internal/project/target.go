// Package project holds the compiler's external configuration: the language
// target enumeration and the lumen.toml manifest.
package project

import (
	"fmt"
	"strings"
)

// Target is the ordered language-version enumeration lowering decisions key
// off. Values are spaced to match the published version numbers so ordinary
// comparison operators express "at least version N".
type Target uint8

const (
	// TargetV3 is the oldest supported output dialect.
	TargetV3 Target = 3
	// TargetV5 adds strict-mode semantics.
	TargetV5 Target = 5
	// TargetV6 is the first dialect with native modern bindings; the legacy
	// lowering pass is unnecessary at and above it.
	TargetV6 Target = 6
	// TargetV7 is the newest dialect.
	TargetV7 Target = 7
)

// DefaultTarget is used when a project does not configure one.
const DefaultTarget = TargetV5

func (t Target) String() string {
	switch t {
	case TargetV3:
		return "v3"
	case TargetV5:
		return "v5"
	case TargetV6:
		return "v6"
	case TargetV7:
		return "v7"
	}
	return fmt.Sprintf("target(%d)", uint8(t))
}

// ParseTarget converts a manifest or flag spelling into a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v3", "3":
		return TargetV3, nil
	case "v5", "5":
		return TargetV5, nil
	case "v6", "6":
		return TargetV6, nil
	case "v7", "7", "latest":
		return TargetV7, nil
	}
	return 0, fmt.Errorf("unknown language target %q", s)
}
