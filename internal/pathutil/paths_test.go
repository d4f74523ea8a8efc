package pathutil

import "testing"

func TestRootLength(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", 0},
		{"a/b", 0},
		{"./a", 0},
		{"../a", 0},
		{"/", 1},
		{"/a/b", 1},
		{"//", 2},
		{"//server", 2},
		{"//server/share", len("//server/")},
		{"//server/share/", len("//server/share/")},
		{"//server/share/file.lm", len("//server/share/")},
		{"c:", 2},
		{"C:x", 2},
		{"c:/", 3},
		{"C:/x", 3},
		{"c:\\x", 2}, // backslashes are not roots until normalized
		{"file:///", len("file:///")},
		{"file:///a/b", len("file:///")},
		{"http://h/a", len("http://")},
		{"https://site.example", len("https://")},
	}
	for _, tt := range tests {
		if got := RootLength(tt.path); got != tt.want {
			t.Errorf("RootLength(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"a/b", "a/b"},
		{"a//b", "a/b"},
		{"a/./b", "a/b"},
		{"a/b/..", "a"},
		{"a/b/../../c", "c"},
		{"/a/b/../c", "/a/c"},
		{"/a/../..", "/.."},
		{"c:\\a\\b\\..\\c", "c:/a/c"},
		{"C:/a/./b/", "C:/a/b"},
		{"//server/share/a/../b", "//server/share/b"},
		{"file:///a/./b", "file:///a/b"},
		{"./a/b", "a/b"},
	}
	for _, tt := range tests {
		got := Normalize(tt.path)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", tt.path, got, again)
		}
	}
}

func TestNormalizeKeepsLeadingDotDot(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"..", ".."},
		{"../a", "../a"},
		{"../../a/b", "../../a/b"},
		{"../a/../../b", "../../b"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.path); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"", "b", "b"},
		{"a", "", "a"},
		{"a", "b", "a/b"},
		{"a/", "b", "a/b"},
		{"/a", "b/c", "/a/b/c"},
		{"a", "/rooted", "/rooted"},
		{"a", "c:/x", "c:/x"},
		{"dir", "http://h/x", "http://h/x"},
	}
	for _, tt := range tests {
		if got := Combine(tt.a, tt.b); got != tt.want {
			t.Errorf("Combine(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c", "/a/b"},
		{"/a", "/"},
		{"/", "/"},
		{"c:/a/b", "c:/a"},
		{"c:/a", "c:/"},
		{"a/b", "a"},
		{"a", ""},
	}
	for _, tt := range tests {
		if got := Dir(tt.path); got != tt.want {
			t.Errorf("Dir(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		path       string
		currentDir string
		want       []string
	}{
		{"/a/b/c", "", []string{"/", "a", "b", "c"}},
		{"c:/x/./y", "", []string{"c:/", "x", "y"}},
		{"b/c", "/a", []string{"/", "a", "b", "c"}},
		{"../c", "/a/b", []string{"/", "a", "c"}},
		{"/a/b/", "", []string{"/", "a", "b"}},
	}
	for _, tt := range tests {
		got := Components(tt.path, tt.currentDir)
		if len(got) != len(tt.want) {
			t.Fatalf("Components(%q, %q) = %v, want %v", tt.path, tt.currentDir, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Components(%q, %q)[%d] = %q, want %q", tt.path, tt.currentDir, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		name       string
		dir        string
		target     string
		currentDir string
		canon      func(string) string
		asURL      bool
		want       string
	}{
		{
			name:   "target below dir",
			dir:    "/a/b",
			target: "/a/b/c/d.lm",
			canon:  Identity,
			want:   "c/d.lm",
		},
		{
			name:   "sibling directory",
			dir:    "/a/b/c",
			target: "/a/b/x/y.lm",
			canon:  Identity,
			want:   "../x/y.lm",
		},
		{
			name:   "trailing separator on dir is ignored",
			dir:    "/a/b/",
			target: "/a/b/c.lm",
			canon:  Identity,
			want:   "c.lm",
		},
		{
			name:   "case-folded match",
			dir:    "/A/B",
			target: "/a/b/c.lm",
			canon:  Fold,
			want:   "c.lm",
		},
		{
			name:   "no common root falls back to absolute",
			dir:    "c:/a",
			target: "d:/x/y.lm",
			canon:  Identity,
			want:   "d:/x/y.lm",
		},
		{
			name:   "no common root with URL fallback",
			dir:    "http://h/a",
			target: "c:/x/y.lm",
			canon:  Identity,
			asURL:  true,
			want:   "file:///c:/x/y.lm",
		},
		{
			name:   "urls with shared host",
			dir:    "http://site/a",
			target: "http://site/a/b/c.lm",
			canon:  Identity,
			want:   "b/c.lm",
		},
		{
			name:       "relative inputs resolved against current dir",
			dir:        "b",
			target:     "b/c/d.lm",
			currentDir: "/a",
			canon:      Identity,
			want:       "c/d.lm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTo(tt.dir, tt.target, tt.currentDir, tt.canon, tt.asURL)
			if got != tt.want {
				t.Errorf("RelativeTo(%q, %q) = %q, want %q", tt.dir, tt.target, got, tt.want)
			}
		})
	}
}

func TestFromComponents(t *testing.T) {
	if got := FromComponents([]string{"/", "a", "b"}); got != "/a/b" {
		t.Errorf("FromComponents = %q, want /a/b", got)
	}
	if got := FromComponents(nil); got != "" {
		t.Errorf("FromComponents(nil) = %q, want empty", got)
	}
}
