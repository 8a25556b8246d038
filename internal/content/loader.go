package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File names inside a content directory.
const (
	PortfolioFile = "portfolio.md"
	ProjectsDir   = "projects"
)

//go:embed default/portfolio.md default/projects/*.md
var defaultFS embed.FS

// Loader reads a portfolio file and the project files next to it.
type Loader struct {
	fsys fs.FS
	file string
	dir  string
}

// Embedded returns a loader for the built-in portfolio.
func Embedded() *Loader {
	sub, err := fs.Sub(defaultFS, "default")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, file: PortfolioFile}
}

// NewLoader returns a loader reading file from fsys. Project files are
// read from the projects directory of fsys.
func NewLoader(fsys fs.FS, file string) *Loader {
	if file == "" {
		file = PortfolioFile
	}
	return &Loader{fsys: fsys, file: file}
}

// Open returns a loader for path, which is either a content directory
// holding portfolio.md or a portfolio file.
func Open(path string) (*Loader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	dir, file := abs, PortfolioFile
	if !info.IsDir() {
		dir, file = filepath.Dir(abs), filepath.Base(abs)
	}
	return &Loader{fsys: os.DirFS(dir), file: file, dir: dir}, nil
}

// Dir returns the content directory on disk, or "" for embedded content.
func (l *Loader) Dir() string {
	return l.dir
}

// Describe returns a short label for the content source.
func (l *Loader) Describe() string {
	if l.dir == "" {
		return "built-in portfolio"
	}
	path := filepath.Join(l.dir, l.file)
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(path)
}

// WatchDirs returns the directories whose changes affect the content.
func (l *Loader) WatchDirs() []string {
	if l.dir == "" {
		return nil
	}
	dirs := []string{l.dir}
	projects := filepath.Join(l.dir, ProjectsDir)
	if info, err := os.Stat(projects); err == nil && info.IsDir() {
		dirs = append(dirs, projects)
	}
	return dirs
}

// Affects reports whether a change to the file at path can change the
// loaded portfolio.
func (l *Loader) Affects(path string) bool {
	if l.dir == "" {
		return false
	}
	clean := filepath.Clean(path)
	if clean == filepath.Join(l.dir, l.file) {
		return true
	}
	return filepath.Dir(clean) == filepath.Join(l.dir, ProjectsDir) && isMarkdown(clean)
}

// Load reads the portfolio.
func (l *Loader) Load() (*Portfolio, error) {
	f, err := l.fsys.Open(l.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", l.file, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.file, err)
	}

	projects, err := l.listProjects()
	if err != nil {
		return nil, err
	}
	p.Projects = append(p.Projects, projects...)
	return p, nil
}

func (l *Loader) listProjects() ([]Project, error) {
	entries, err := fs.ReadDir(l.fsys, ProjectsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	type named struct {
		name    string
		project Project
	}
	var found []named
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isMarkdown(name) {
			continue
		}
		data, err := fs.ReadFile(l.fsys, ProjectsDir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to read project %s: %w", name, err)
		}
		project, err := ParseProject(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if project.Title == "" {
			project.Title = strings.TrimSuffix(name, filepath.Ext(name))
		}
		found = append(found, named{name: name, project: project})
	}

	sort.SliceStable(found, func(i, j int) bool {
		pi, pj := found[i].project, found[j].project
		if pi.Order != pj.Order {
			return pi.Order < pj.Order
		}
		return strings.ToLower(found[i].name) < strings.ToLower(found[j].name)
	})

	projects := make([]Project, 0, len(found))
	for _, f := range found {
		projects = append(projects, f.project)
	}
	return projects, nil
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}
