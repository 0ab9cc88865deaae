package inspection

import (
	"path/filepath"
	"strings"
)

// LanguageAny is the wildcard language id. Providers registered under it
// are selected for every file, after the language-specific ones.
const LanguageAny = "*"

// defaultExtensions maps file extensions to language ids. The registry
// copies this table so per-instance overrides never leak across tests.
var defaultExtensions = map[string]string{
	".c":        "c",
	".cpp":      "cpp",
	".css":      "css",
	".go":       "go",
	".h":        "c",
	".html":     "html",
	".js":       "javascript",
	".json":     "json",
	".jsx":      "javascript",
	".markdown": "markdown",
	".md":       "markdown",
	".py":       "python",
	".rb":       "ruby",
	".rs":       "rust",
	".sh":       "shell",
	".ts":       "typescript",
	".tsx":      "typescript",
	".yaml":     "yaml",
	".yml":      "yaml",
}

// languageForPath resolves a file path to a language id using the given
// extension table. Unknown extensions yield the empty string.
func languageForPath(path string, extensions map[string]string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return extensions[ext]
}
