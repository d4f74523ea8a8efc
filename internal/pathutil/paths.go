// Package pathutil implements the path and URL string algebra used to derive
// canonical file identities. Everything here operates on forward-slash strings
// and is independent of the host OS: a path normalized on Windows must compare
// equal to the same path normalized on Linux, so filepath is deliberately not
// used.
package pathutil

import "strings"

// Separator is the canonical path separator.
const Separator = "/"

const urlSchemeSeparator = "://"

// filePrefix is the scheme prefix for local file URLs.
const filePrefix = "file:///"

// NormalizeSlashes rewrites every backslash into a forward slash.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// RootLength returns the length of the prefix that identifies the path's
// drive, host, or scheme. A return of 0 means the path is relative.
//
// Recognized roots: "/" (POSIX), "//host/share/" (UNC), "c:" and "c:/"
// (drive), "file:///" (local file URL), and "scheme://" for any other URL.
func RootLength(path string) int {
	if path == "" {
		return 0
	}
	if path[0] == '/' {
		if len(path) < 2 || path[1] != '/' {
			return 1
		}
		// UNC: the root spans the host and share segments.
		p1 := strings.Index(path[2:], Separator)
		if p1 < 0 {
			return 2
		}
		p1 += 2
		p2 := strings.Index(path[p1+1:], Separator)
		if p2 < 0 {
			return p1 + 1
		}
		return p1 + 1 + p2 + 1
	}
	if len(path) >= 2 && path[1] == ':' {
		if len(path) >= 3 && path[2] == '/' {
			return 3
		}
		return 2
	}
	if strings.HasPrefix(path, filePrefix) {
		return len(filePrefix)
	}
	if idx := strings.Index(path, urlSchemeSeparator); idx >= 0 {
		return idx + len(urlSchemeSeparator)
	}
	return 0
}

// IsRooted reports whether the path has any root prefix at all.
func IsRooted(path string) bool {
	return RootLength(path) != 0
}

// IsURL reports whether the path carries a URL scheme.
func IsURL(path string) bool {
	return strings.Contains(path, urlSchemeSeparator)
}

// IsRootedDiskPath reports whether the path is absolute on disk, as opposed
// to relative or scheme-qualified.
func IsRootedDiskPath(path string) bool {
	return RootLength(path) != 0 && !IsURL(path)
}

// normalizedParts splits everything after the root on "/" and resolves the
// segments: empty segments and "." are dropped, ".." cancels the previously
// kept segment. A ".." with nothing to cancel (or stacked on another kept
// "..") is kept literally; relative paths may legitimately begin with one.
func normalizedParts(path string, rootLength int) []string {
	parts := strings.Split(path[rootLength:], Separator)
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			// skip
		case "..":
			if n := len(normalized); n > 0 && normalized[n-1] != ".." {
				normalized = normalized[:n-1]
			} else {
				normalized = append(normalized, part)
			}
		default:
			normalized = append(normalized, part)
		}
	}
	return normalized
}

// Normalize converts a path into canonical form: forward slashes only, no
// "." or empty segments, ".." resolved against kept segments. Idempotent.
func Normalize(path string) string {
	path = NormalizeSlashes(path)
	rootLength := RootLength(path)
	return path[:rootLength] + strings.Join(normalizedParts(path, rootLength), Separator)
}

// Combine joins two paths. A rooted second path wins outright; otherwise the
// two are concatenated with exactly one separator between them. The result is
// not normalized.
func Combine(path1, path2 string) string {
	if path1 == "" {
		return path2
	}
	if path2 == "" {
		return path1
	}
	if RootLength(path2) != 0 {
		return path2
	}
	if strings.HasSuffix(path1, Separator) {
		return path1 + path2
	}
	return path1 + Separator + path2
}

// Dir returns the directory portion of a path, never shorter than its root.
func Dir(path string) string {
	path = NormalizeSlashes(path)
	end := strings.LastIndex(path, Separator)
	if rootLength := RootLength(path); rootLength > end {
		end = rootLength
	}
	if end < 0 {
		return ""
	}
	return path[:end]
}

// Components splits a path into [root, seg1, seg2, ...] with ".", ".." and
// empty segments already resolved. Relative paths are first combined with
// currentDir. Element 0 is "" for paths that stay relative.
func Components(path, currentDir string) []string {
	path = NormalizeSlashes(path)
	rootLength := RootLength(path)
	if rootLength == 0 {
		path = Combine(NormalizeSlashes(currentDir), path)
		rootLength = RootLength(path)
	}
	return rootedComponents(path, rootLength)
}

func rootedComponents(path string, rootLength int) []string {
	return append([]string{path[:rootLength]}, normalizedParts(path, rootLength)...)
}

// urlComponents splits a URL into [root, seg1, ...] where the root extends
// through the host: "http://site/a/b" has root "http://site/". A URL with no
// path after the host becomes a single root component with a trailing
// separator so it joins correctly with relative segments.
func urlComponents(url string) []string {
	rootLength := strings.Index(url, urlSchemeSeparator) + len(urlSchemeSeparator)
	for rootLength < len(url) && url[rootLength] == '/' {
		rootLength++
	}
	if rootLength == len(url) {
		return []string{url}
	}
	if idx := strings.Index(url[rootLength:], Separator); idx >= 0 {
		return rootedComponents(url, rootLength+idx+1)
	}
	return []string{url + Separator}
}

func pathOrURLComponents(pathOrURL, currentDir string) []string {
	if pathOrURL != "" && IsURL(pathOrURL) {
		return urlComponents(pathOrURL)
	}
	return Components(pathOrURL, currentDir)
}

// FromComponents reassembles a components array back into a path string.
func FromComponents(components []string) string {
	if len(components) == 0 {
		return ""
	}
	return components[0] + strings.Join(components[1:], Separator)
}

// RelativeTo computes the path of target relative to dir. Both inputs may be
// disk paths or URLs; relative inputs are resolved against currentDir.
// Components are matched through canonicalize, so a case-folding host can
// supply its folding function. When the two share no root the absolute
// normalized target is returned instead, with a file URL scheme prepended
// when isAbsolutePathAnURL is set and the target is disk-rooted.
func RelativeTo(dir, target, currentDir string, canonicalize func(string) string, isAbsolutePathAnURL bool) string {
	targetComponents := pathOrURLComponents(target, currentDir)
	dirComponents := pathOrURLComponents(dir, currentDir)
	// A trailing separator on dir leaves an empty last component behind.
	if n := len(dirComponents); n > 1 && dirComponents[n-1] == "" {
		dirComponents = dirComponents[:n-1]
	}

	joinStart := 0
	for joinStart < len(targetComponents) && joinStart < len(dirComponents) {
		if canonicalize(dirComponents[joinStart]) != canonicalize(targetComponents[joinStart]) {
			break
		}
		joinStart++
	}

	if joinStart > 0 {
		var relative strings.Builder
		for i := joinStart; i < len(dirComponents); i++ {
			if dirComponents[i] != "" {
				relative.WriteString(".." + Separator)
			}
		}
		return relative.String() + strings.Join(targetComponents[joinStart:], Separator)
	}

	// No common root: degrade to the absolute target path.
	absolute := FromComponents(targetComponents)
	if isAbsolutePathAnURL && IsRootedDiskPath(absolute) {
		absolute = filePrefix + absolute
	}
	return absolute
}

// Identity is the canonicalizer for case-sensitive hosts.
func Identity(s string) string { return s }

// Fold is the canonicalizer for case-insensitive hosts.
func Fold(s string) string { return strings.ToLower(s) }
