package paths

import (
	"path/filepath"
	"testing"
)

func TestLayout(t *testing.T) {
	root := filepath.Join("home", "dev", "streamwatch")
	tests := []struct {
		name, got, want string
	}{
		{"WebDir", WebDir(root), filepath.Join(root, "web")},
		{"WebIconsDir", WebIconsDir(root), filepath.Join(root, "web", "icons")},
		{"WindowsDir", WindowsDir(root), filepath.Join(root, "windows", "runner", "resources")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestIconsDirIsUnderWebDir(t *testing.T) {
	root := "app"
	rel, err := filepath.Rel(WebDir(root), WebIconsDir(root))
	if err != nil || rel != "icons" {
		t.Errorf("WebIconsDir is %q relative to WebDir (err %v), want \"icons\"", rel, err)
	}
}
