package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/page"
	"github.com/kyaoi/folio/internal/pref"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Preferences.Backend = pref.BackendMemory
	return cfg
}

func TestOpenEnv(t *testing.T) {
	t.Run("memory backend without logging", func(t *testing.T) {
		env, err := OpenEnv(memoryConfig())
		if err != nil {
			t.Fatalf("OpenEnv failed: %v", err)
		}
		if _, ok := env.Store.(*pref.MemoryStore); !ok {
			t.Errorf("store = %T, want *pref.MemoryStore", env.Store)
		}
		if err := env.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
		if err := env.Close(); err != nil {
			t.Errorf("second Close failed: %v", err)
		}
	})

	t.Run("sqlite backend with logging", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Default()
		cfg.Preferences.Backend = pref.BackendSQLite
		cfg.Preferences.Dir = filepath.Join(dir, "data")
		cfg.Logging.Enabled = true
		cfg.Logging.Level = logging.LevelDebug
		cfg.Logging.Dir = filepath.Join(dir, "logs")

		env, err := OpenEnv(cfg)
		if err != nil {
			t.Fatalf("OpenEnv failed: %v", err)
		}
		if err := env.Store.Set(page.ThemeKey, "light"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := env.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(cfg.Preferences.Dir, pref.SQLiteStoreName)); err != nil {
			t.Errorf("database not created: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, logging.FileName))
		if err != nil {
			t.Fatalf("log file not created: %v", err)
		}
		if !strings.Contains(string(data), "environment ready") {
			t.Errorf("log file missing startup entry: %s", data)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Preferences.Backend = "cloud"
		if _, err := OpenEnv(cfg); err == nil {
			t.Error("expected an error for an unknown backend")
		}
	})
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    page.ID
		wantErr bool
	}{
		{"", "", false},
		{"skills", page.Skills, false},
		{"contact", page.Contact, false},
		{"blog", "", true},
		{"Skills", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSection) {
					t.Errorf("ParseSection(%q) error = %v, want ErrUnknownSection", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSection(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

func TestLoadInitialState(t *testing.T) {
	cfg := memoryConfig()
	cfg.TUI.NavBreakpoint = 72
	cfg.TUI.SmoothScroll = false
	env, err := OpenEnv(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()

	t.Run("built-in content", func(t *testing.T) {
		state, err := LoadInitialState(cfg, env, Options{Section: "projects"})
		if err != nil {
			t.Fatalf("LoadInitialState failed: %v", err)
		}
		if state.Portfolio == nil || len(state.Portfolio.Projects) != 3 {
			t.Fatalf("portfolio = %+v", state.Portfolio)
		}
		if state.Section != page.Projects {
			t.Errorf("Section = %q, want projects", state.Section)
		}
		if state.NavBreakpoint != 72 || state.SmoothScroll {
			t.Errorf("TUI settings not carried over: %+v", state)
		}
		if state.Page == nil || state.Page.Theme() != page.Dark {
			t.Error("page should start dark with an empty store")
		}
		if state.Loader == nil || state.Loader.Dir() != "" {
			t.Error("built-in content should use the embedded loader")
		}
	})

	t.Run("tech filter", func(t *testing.T) {
		state, err := LoadInitialState(cfg, env, Options{Tech: "flask"})
		if err != nil {
			t.Fatalf("LoadInitialState failed: %v", err)
		}
		if len(state.Portfolio.Projects) != 2 || state.TechFilter != "flask" {
			t.Errorf("filtered projects = %d, filter = %q", len(state.Portfolio.Projects), state.TechFilter)
		}
	})

	t.Run("tech filter without matches", func(t *testing.T) {
		_, err := LoadInitialState(cfg, env, Options{Tech: "cobol"})
		if !errors.Is(err, content.ErrNoMatchingProjects) {
			t.Errorf("error = %v, want ErrNoMatchingProjects", err)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := LoadInitialState(cfg, env, Options{Section: "blog"})
		if !errors.Is(err, ErrUnknownSection) {
			t.Errorf("error = %v, want ErrUnknownSection", err)
		}
	})

	t.Run("content from disk", func(t *testing.T) {
		dir := t.TempDir()
		data := "---\nname: Grace\n---\nHello.\n"
		if err := os.WriteFile(filepath.Join(dir, content.PortfolioFile), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		diskCfg := *cfg
		diskCfg.Content = dir
		state, err := LoadInitialState(&diskCfg, env, Options{})
		if err != nil {
			t.Fatalf("LoadInitialState failed: %v", err)
		}
		if state.Portfolio.Name != "Grace" {
			t.Errorf("Name = %q, want Grace", state.Portfolio.Name)
		}
		if len(state.Loader.WatchDirs()) == 0 {
			t.Error("disk content should be watched")
		}
	})

	t.Run("missing content", func(t *testing.T) {
		missing := *cfg
		missing.Content = filepath.Join(t.TempDir(), "nope")
		if _, err := LoadInitialState(&missing, env, Options{}); err == nil {
			t.Error("expected an error for missing content")
		}
	})
}

func TestFilterProjects(t *testing.T) {
	t.Parallel()

	p := &content.Portfolio{Projects: []content.Project{
		{Title: "A", Tech: []string{"Go", "SQLite"}},
		{Title: "B", Tech: []string{"React"}},
	}}

	got, err := FilterProjects(p, "go")
	if err != nil {
		t.Fatalf("FilterProjects failed: %v", err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Title != "A" {
		t.Errorf("projects = %+v", got.Projects)
	}

	_, err = FilterProjects(p, "rust")
	if !errors.Is(err, content.ErrNoMatchingProjects) {
		t.Fatalf("error = %v, want ErrNoMatchingProjects", err)
	}
	if !strings.Contains(err.Error(), "available: Go, SQLite, React") {
		t.Errorf("error should list technologies: %v", err)
	}

	_, err = FilterProjects(&content.Portfolio{}, "go")
	if err == nil || strings.Contains(err.Error(), "available") {
		t.Errorf("empty portfolio error = %v", err)
	}
}
