package repository

import "golang.org/x/mod/modfile"

// Project types
const (
	TypeGo         = "go"
	TypeJavaScript = "javascript"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)

// Project represents information about a detected project
type Project struct {
	RootPath     string          // Absolute path to the project root directory
	Type         string          // Type of project (go, javascript, git)
	Name         string          // Name of the project (extracted from config files)
	RelativePath string          // Path from project root to the specified location
	GoModule     *modfile.Module // Go module, when the root holds a go.mod
	Workspaces   []string        // package.json workspace patterns
}

// packageJSON holds the package.json fields used for detection
type packageJSON struct {
	Name       string   `json:"name"`
	Workspaces []string `json:"workspaces"`
}
