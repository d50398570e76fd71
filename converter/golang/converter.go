package golang

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/docmerge/reflection"
	"github.com/viant/docmerge/repository"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"
)

// Converter converts Go modules into a reflection tree
type Converter struct {
	config   *reflection.Config
	fs       afs.Service
	detector *repository.Detector
}

// NewConverter creates a Go converter with the provided configuration
func NewConverter(config *reflection.Config) *Converter {
	if config == nil {
		config = &reflection.Config{SkipTests: true}
	}
	return &Converter{config: config, fs: afs.New(), detector: repository.New()}
}

// Convert converts every go.mod module under the project containing location. Each module becomes a
// module node; its packages other than the root one become nested modules named by relative import path.
func (c *Converter) Convert(ctx context.Context, location string) (*reflection.Project, error) {
	info, err := c.detector.DetectProject(ctx, location)
	if err != nil {
		return nil, err
	}
	rootDir := info.RootPath
	if info.Type != repository.TypeGo {
		if rootDir, err = filepath.Abs(location); err != nil {
			return nil, err
		}
	}
	dirs, err := c.detector.FindMarkers(ctx, rootDir, "go.mod")
	if err != nil {
		return nil, err
	}
	project := reflection.NewProject(info.Name)
	for _, dir := range dirs {
		if err = c.convertModule(ctx, project, dir); err != nil {
			return nil, err
		}
	}
	return project, nil
}

func (c *Converter) convertModule(ctx context.Context, project *reflection.Project, dir string) error {
	goModPath := filepath.Join(dir, "go.mod")
	content, err := c.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", goModPath, err)
	}
	modulePath := modfile.ModulePath(content)
	if modulePath == "" {
		return fmt.Errorf("failed to read module path from %s", goModPath)
	}
	module, err := project.NewNode(reflection.KindModule, modulePath, project.Root())
	if err != nil {
		return err
	}
	project.Node(module).Source = dir

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax | packages.NeedModule,
		Dir:     dir,
		Tests:   !c.config.SkipTests,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return fmt.Errorf("failed to load packages of %s: %w", modulePath, err)
	}
	slices.SortFunc(pkgs, func(a, b *packages.Package) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})
	seen := map[string]bool{}
	for _, pkg := range pkgs {
		if seen[pkg.PkgPath] || pkg.Module != nil && pkg.Module.Path != modulePath {
			continue
		}
		seen[pkg.PkgPath] = true
		if len(pkg.Errors) > 0 {
			return fmt.Errorf("failed to load package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		parent := module
		if rel := strings.TrimPrefix(strings.TrimPrefix(pkg.PkgPath, modulePath), "/"); rel != "" {
			if parent, err = project.NewNode(reflection.KindModule, rel, module); err != nil {
				return err
			}
		}
		if err = c.convertPackage(project, parent, pkg); err != nil {
			return err
		}
	}
	return nil
}
