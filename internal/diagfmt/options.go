// Package diagfmt renders diagnostics for people and tools. It consumes the
// diag data model read-only; nothing here mutates a bag.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the canonical path unchanged.
	PathModeAsIs PathMode = iota
	// PathModeRelative prints paths relative to BaseDir.
	PathModeRelative
	// PathModeBasename prints only the final path segment.
	PathModeBasename
)

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// BaseDir anchors PathModeRelative.
	BaseDir string
	// Context enables the source line with a caret underline.
	Context bool
}

// JSONOpts configures machine-readable output.
type JSONOpts struct {
	// IncludePositions adds line/col to each record.
	IncludePositions bool
}
