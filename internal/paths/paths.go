package paths

import "path/filepath"

const (
	IcoFileName = "app_icon.ico"
	DirPerm     = 0755
	FilePerm    = 0644
)

// WebDir returns the Flutter web asset directory under the project root.
func WebDir(root string) string {
	return filepath.Join(root, "web")
}

// WebIconsDir returns the PWA icon directory under the project root.
func WebIconsDir(root string) string {
	return filepath.Join(root, "web", "icons")
}

// WindowsDir returns the Windows runner resource directory under the project
// root, where app_icon.ico is embedded into the desktop build.
func WindowsDir(root string) string {
	return filepath.Join(root, "windows", "runner", "resources")
}
