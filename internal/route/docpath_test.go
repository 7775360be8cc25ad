package route

import "testing"

func TestDocumentPathParts(t *testing.T) {
	tests := []struct {
		path    DocumentPath
		dir     string
		section string
		base    string
	}{
		{"index.md", "", "", "index.md"},
		{"architecture/overview.md", "architecture/", "architecture", "overview.md"},
		{"a/b/c.md", "a/b/", "a", "c.md"},
	}
	for _, tt := range tests {
		if got := tt.path.Dir(); got != tt.dir {
			t.Errorf("%q.Dir() = %q, want %q", tt.path, got, tt.dir)
		}
		if got := tt.path.Section(); got != tt.section {
			t.Errorf("%q.Section() = %q, want %q", tt.path, got, tt.section)
		}
		if got := tt.path.Base(); got != tt.base {
			t.Errorf("%q.Base() = %q, want %q", tt.path, got, tt.base)
		}
	}
}

func TestParent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a/b", "a"},
		{"a", ""},
		{"", ""},
		{"a/b/", "a/b"},
	}
	for _, tt := range tests {
		if got := Parent(tt.in); got != tt.want {
			t.Errorf("Parent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{"guide", "guide.md"},
		{"a/guide", "a/guide.md"},
		{"guide.md", "guide.md"},
		{"diagram.png", "diagram.png"},
		{"v1.2/notes", "v1.2/notes"},
	}
	for _, tt := range tests {
		if got := EnsureExt(tt.in); got != tt.want {
			t.Errorf("EnsureExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want DocumentPath
	}{
		{"a//b///c.md", "a/b/c.md"},
		{"./a.md", "a.md"},
		{"/a.md", "a.md"},
		{"a.md", "a.md"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("", "x.md"); got != "x.md" {
		t.Errorf("Join empty dir = %q", got)
	}
	if got := Join("a/", "x.md"); got != "a/x.md" {
		t.Errorf("Join = %q", got)
	}
	if got := Join("a", "x.md"); got != "a/x.md" {
		t.Errorf("Join = %q", got)
	}
}
