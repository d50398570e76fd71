package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	// project root marker files/directories, in precedence order
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"go.mod",       // Go projects
			"package.json", // JavaScript/Node projects
			".git",         // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given location and returns project info
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	object, err := d.fs.Object(ctx, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project at %s: %w", location, err)
	}
	startDir := absPath
	if !object.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(ctx, startDir)
	info := &Project{Type: TypeUnknown, RootPath: startDir, Name: filepath.Base(startDir)}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
		info.Name = filepath.Base(rootPath)
	}
	if relPath, err := filepath.Rel(info.RootPath, absPath); err == nil {
		info.RelativePath = filepath.ToSlash(relPath)
	}

	switch info.Type {
	case TypeGo:
		if err = d.readGoModule(ctx, info); err != nil {
			return nil, err
		}
	case TypeJavaScript:
		if err = d.readPackageJSON(ctx, info); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) readGoModule(ctx context.Context, info *Project) error {
	goModPath := filepath.Join(info.RootPath, "go.mod")
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", goModPath, err)
	}
	mod, err := modfile.ParseLax(goModPath, content, nil)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", goModPath, err)
	}
	if mod.Module != nil {
		info.GoModule = mod.Module
		info.Name = mod.Module.Mod.Path
	}
	return nil
}

func (d *Detector) readPackageJSON(ctx context.Context, info *Project) error {
	packagePath := filepath.Join(info.RootPath, "package.json")
	content, err := d.fs.DownloadWithURL(ctx, packagePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", packagePath, err)
	}
	pkg := &packageJSON{}
	if err = json.Unmarshal(content, pkg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", packagePath, err)
	}
	if pkg.Name != "" {
		info.Name = pkg.Name
	}
	info.Workspaces = pkg.Workspaces
	return nil
}

// FindMarkers returns the sorted directories under root holding a file named marker.
// Dependency and VCS folders are skipped.
func (d *Detector) FindMarkers(ctx context.Context, root string, marker string) ([]string, error) {
	var dirs []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return !skipDir(info.Name()), nil
		}
		if info.Name() == marker {
			dirs = append(dirs, filepath.Clean(url.Path(url.Join(baseURL, parent))))
		}
		return true, nil
	}
	if err := d.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to find %s under %s: %w", marker, root, err)
	}
	slices.Sort(dirs)
	return dirs, nil
}

func skipDir(name string) bool {
	switch name {
	case "node_modules", ".git", "vendor", "testdata":
		return true
	}
	return false
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return TypeGo
	case "package.json":
		return TypeJavaScript
	case ".git":
		return TypeGit
	default:
		return TypeUnknown
	}
}
