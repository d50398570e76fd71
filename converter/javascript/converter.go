package javascript

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/docmerge/reflection"
	"github.com/viant/docmerge/repository"
)

// Extensions lists converted file extensions
var Extensions = []string{".js", ".jsx", ".mjs"}

// Converter converts JavaScript sources into a reflection tree
type Converter struct {
	config   *reflection.Config
	fs       afs.Service
	detector *repository.Detector
}

// NewConverter creates a JavaScript converter with the provided configuration
func NewConverter(config *reflection.Config) *Converter {
	if config == nil {
		config = &reflection.Config{SkipTests: true}
	}
	return &Converter{config: config, fs: afs.New(), detector: repository.New()}
}

// packageRoot is a directory converted into a module
type packageRoot struct {
	dir  string
	name string
}

// Convert converts every source file of the project containing location. Workspace packages become
// modules holding one module per file; otherwise file modules are owned by the project root.
func (c *Converter) Convert(ctx context.Context, location string) (*reflection.Project, error) {
	info, err := c.detector.DetectProject(ctx, location)
	if err != nil {
		return nil, err
	}
	rootDir := info.RootPath
	if info.Type != repository.TypeJavaScript {
		if rootDir, err = filepath.Abs(location); err != nil {
			return nil, err
		}
	}
	project := reflection.NewProject(info.Name)

	packages, err := c.workspacePackages(ctx, info)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		if err = c.convertDir(ctx, project, project.Root(), rootDir); err != nil {
			return nil, err
		}
		return project, nil
	}
	for _, pkg := range packages {
		module, err := project.NewNode(reflection.KindModule, pkg.name, project.Root())
		if err != nil {
			return nil, err
		}
		project.Node(module).Source = pkg.dir
		if err = c.convertDir(ctx, project, module, pkg.dir); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// workspacePackages returns package.json directories matching the project workspace patterns
func (c *Converter) workspacePackages(ctx context.Context, info *repository.Project) ([]*packageRoot, error) {
	if len(info.Workspaces) == 0 {
		return nil, nil
	}
	dirs, err := c.detector.FindMarkers(ctx, info.RootPath, "package.json")
	if err != nil {
		return nil, err
	}
	var result []*packageRoot
	for _, dir := range dirs {
		rel, err := filepath.Rel(info.RootPath, dir)
		if err != nil || rel == "." {
			continue
		}
		if !matchesAny(info.Workspaces, filepath.ToSlash(rel)) {
			continue
		}
		pkg, err := c.detector.DetectProject(ctx, dir)
		if err != nil {
			return nil, err
		}
		result = append(result, &packageRoot{dir: dir, name: pkg.Name})
	}
	return result, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(strings.TrimPrefix(pattern, "./"), "/")
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (c *Converter) convertDir(ctx context.Context, project *reflection.Project, parent reflection.ID, dir string) error {
	sources, err := c.sources(ctx, dir)
	if err != nil {
		return err
	}
	for _, location := range sources {
		src, err := c.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", location, err)
		}
		rel, err := filepath.Rel(dir, location)
		if err != nil {
			return err
		}
		if _, err = c.ConvertSource(ctx, project, parent, filepath.ToSlash(rel), filepath.Dir(location), src); err != nil {
			return err
		}
	}
	return nil
}

// sources returns sorted source files under dir
func (c *Converter) sources(ctx context.Context, dir string) ([]string, error) {
	var result []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		name := info.Name()
		if info.IsDir() {
			return name != "node_modules" && !strings.HasPrefix(name, "."), nil
		}
		if !slices.Contains(Extensions, strings.ToLower(filepath.Ext(name))) {
			return true, nil
		}
		if c.config.SkipTests && (strings.Contains(name, ".test.") || strings.Contains(name, ".spec.")) {
			return true, nil
		}
		result = append(result, filepath.Clean(url.Path(url.Join(baseURL, parent, name))))
		return true, nil
	}
	if err := c.fs.Walk(ctx, dir, visitor); err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}
	slices.Sort(result)
	return result, nil
}
