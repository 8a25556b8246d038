package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kyaoi/folio/internal/pref"
)

type fakeLocator map[ID]int

func (l fakeLocator) Locate(id ID) (int, bool) {
	line, ok := l[id]
	return line, ok
}

type recordingScroller struct {
	lines []int
}

func (s *recordingScroller) ScrollTo(line int) {
	s.lines = append(s.lines, line)
}

// scriptedWatcher captures the callback so tests can deliver entries.
type scriptedWatcher struct {
	cb          Callback
	observed    map[ID]float64
	disconnects int
}

func (w *scriptedWatcher) Observe(id ID, threshold float64) {
	w.observed[id] = threshold
}

func (w *scriptedWatcher) Disconnect() {
	w.disconnects++
}

func (w *scriptedWatcher) emit(entries ...Entry) {
	w.cb(entries)
}

func scripted(w **scriptedWatcher) WatcherFunc {
	return func(cb Callback) Watcher {
		*w = &scriptedWatcher{cb: cb, observed: make(map[ID]float64)}
		return *w
	}
}

// countingStore counts successful writes to the wrapped store.
type countingStore struct {
	pref.Store
	writes int
}

func (s *countingStore) Set(key, value string) error {
	if err := s.Store.Set(key, value); err != nil {
		return err
	}
	s.writes++
	return nil
}

type failingStore struct {
	pref.Store
	getErr error
	setErr error
}

func (s failingStore) Get(string) (string, bool, error) {
	return "", false, s.getErr
}

func (s failingStore) Set(string, string) error {
	return s.setErr
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		store pref.Store
		want  Theme
	}{
		{"empty store", pref.NewMemoryStore(), Dark},
		{"nil store", nil, Dark},
		{"read error", failingStore{getErr: errors.New("boom")}, Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.store).Theme(); got != tt.want {
				t.Errorf("Theme() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoredTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stored string
		want   Theme
	}{
		{"light", Light},
		{"dark", Dark},
		{"solarized", Dark},
		{"", Dark},
		{"LIGHT", Dark},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			t.Parallel()
			store := pref.NewMemoryStore()
			if err := store.Set(ThemeKey, tt.stored); err != nil {
				t.Fatal(err)
			}
			if got := New(store).Theme(); got != tt.want {
				t.Errorf("Theme() with stored %q = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}

func TestToggleThemePersists(t *testing.T) {
	t.Parallel()

	store := &countingStore{Store: pref.NewMemoryStore()}
	p := New(store)

	for i := 0; i < 5; i++ {
		next, err := p.ToggleTheme()
		if err != nil {
			t.Fatalf("ToggleTheme failed: %v", err)
		}
		if next != p.Theme() {
			t.Errorf("returned %q but Theme() = %q", next, p.Theme())
		}
		stored, ok, _ := store.Get(ThemeKey)
		if !ok || Theme(stored) != p.Theme() {
			t.Errorf("toggle %d: stored %q, in memory %q", i, stored, p.Theme())
		}
		if reloaded := New(store).Theme(); reloaded != p.Theme() {
			t.Errorf("toggle %d: reload gives %q, want %q", i, reloaded, p.Theme())
		}
	}
	if store.writes != 5 {
		t.Errorf("writes = %d, want 5", store.writes)
	}
}

func TestToggleThemeOverCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), pref.FileStoreName)
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(pref.NewFileStore(path))
	if p.Theme() != Dark {
		t.Fatalf("initial theme = %q, want dark", p.Theme())
	}
	for _, want := range []Theme{Light, Dark, Light} {
		got, err := p.ToggleTheme()
		if err != nil {
			t.Fatalf("ToggleTheme failed: %v", err)
		}
		if got != want {
			t.Errorf("ToggleTheme() = %q, want %q", got, want)
		}
	}
	if reloaded := New(pref.NewFileStore(path)).Theme(); reloaded != Light {
		t.Errorf("reloaded theme = %q, want light", reloaded)
	}
}

func TestSetThemeReplacesUnknownValue(t *testing.T) {
	t.Parallel()

	store := &countingStore{Store: pref.NewMemoryStore()}
	_ = store.Store.Set(ThemeKey, "sepia")

	p := New(store)
	if p.Theme() != Dark {
		t.Fatalf("initial theme = %q, want dark", p.Theme())
	}
	if err := p.SetTheme(Dark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if raw, _, _ := store.Get(ThemeKey); raw != string(Dark) {
		t.Errorf("stored %q, want dark", raw)
	}
	if store.writes != 1 {
		t.Errorf("writes = %d, want 1", store.writes)
	}

	failing := New(failingStore{setErr: errors.New("disk full")})
	if err := failing.SetTheme(Light); err == nil {
		t.Error("expected error from failing store")
	}
	if failing.Theme() != Dark {
		t.Errorf("theme after failed set = %q, want dark", failing.Theme())
	}
}

func TestToggleThemeInvolution(t *testing.T) {
	t.Parallel()

	for _, start := range []Theme{Light, Dark} {
		store := pref.NewMemoryStore()
		_ = store.Set(ThemeKey, string(start))
		p := New(store)

		if _, err := p.ToggleTheme(); err != nil {
			t.Fatal(err)
		}
		if _, err := p.ToggleTheme(); err != nil {
			t.Fatal(err)
		}
		if p.Theme() != start {
			t.Errorf("two toggles from %q ended at %q", start, p.Theme())
		}
	}
}

func TestToggleThemeWriteFailure(t *testing.T) {
	t.Parallel()

	p := New(failingStore{setErr: errors.New("disk full")})
	got, err := p.ToggleTheme()
	if err == nil {
		t.Fatal("expected error")
	}
	if got != Dark || p.Theme() != Dark {
		t.Errorf("theme changed despite failed write: returned %q, Theme() %q", got, p.Theme())
	}
}

func TestNavigate(t *testing.T) {
	t.Parallel()

	t.Run("scrolls to located section and closes menu", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		scr := &recordingScroller{}
		p.Mount(fakeLocator{Home: 0, Skills: 42}, scr, nil)
		p.ToggleMenu()

		p.Navigate(Skills)

		if len(scr.lines) != 1 || scr.lines[0] != 42 {
			t.Errorf("ScrollTo calls = %v, want [42]", scr.lines)
		}
		if p.MenuOpen() {
			t.Error("menu should be closed after Navigate")
		}
	})

	t.Run("unknown section is a no-op that closes menu", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		scr := &recordingScroller{}
		p.Mount(fakeLocator{Home: 0}, scr, nil)
		p.ToggleMenu()

		p.Navigate("blog")

		if len(scr.lines) != 0 {
			t.Errorf("ScrollTo calls = %v, want none", scr.lines)
		}
		if p.MenuOpen() {
			t.Error("menu should be closed after Navigate")
		}
	})

	t.Run("unmounted page only closes menu", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		p.ToggleMenu()
		p.Navigate(Home)
		if p.MenuOpen() {
			t.Error("menu should be closed after Navigate")
		}
	})

	t.Run("closed menu stays closed", func(t *testing.T) {
		t.Parallel()
		p := New(nil)
		p.Navigate(Contact)
		if p.MenuOpen() {
			t.Error("menu should be closed after Navigate")
		}
	})
}

func TestMountObservesLocatedSections(t *testing.T) {
	t.Parallel()

	var w *scriptedWatcher
	p := New(nil)
	p.Mount(fakeLocator{Home: 0, Projects: 10, Contact: 30}, nil, scripted(&w))

	if len(w.observed) != 3 {
		t.Fatalf("observed %d sections, want 3", len(w.observed))
	}
	for _, id := range []ID{Home, Projects, Contact} {
		if th, ok := w.observed[id]; !ok || th != VisibilityThreshold {
			t.Errorf("section %q observed = %v (threshold %v)", id, ok, th)
		}
	}
	if _, ok := w.observed[Education]; ok {
		t.Error("missing section should not be observed")
	}
}

func TestActiveSectionUpdates(t *testing.T) {
	t.Parallel()

	var w *scriptedWatcher
	p := New(nil)
	p.Mount(fakeLocator{Home: 0, Skills: 10, Contact: 20}, nil, scripted(&w))

	if p.Active() != Home {
		t.Fatalf("initial active = %q, want home", p.Active())
	}

	w.emit(Entry{ID: Skills, Ratio: 0.6, Intersecting: true})
	if p.Active() != Skills {
		t.Errorf("active = %q, want skills", p.Active())
	}

	w.emit(Entry{ID: Contact, Ratio: 0.5, Intersecting: true})
	if p.Active() != Contact {
		t.Errorf("active = %q, want contact", p.Active())
	}

	w.emit(Entry{ID: Skills, Ratio: 0.1, Intersecting: false})
	if p.Active() != Contact {
		t.Errorf("non-intersecting entry changed active to %q", p.Active())
	}

	// Entries in one batch: the last intersecting one wins.
	w.emit(
		Entry{ID: Home, Ratio: 0.9, Intersecting: true},
		Entry{ID: Skills, Ratio: 0.5, Intersecting: true},
		Entry{ID: Contact, Ratio: 0.2, Intersecting: false},
	)
	if p.Active() != Skills {
		t.Errorf("active = %q, want skills (last intersecting entry)", p.Active())
	}
}

func TestUnmount(t *testing.T) {
	t.Parallel()

	t.Run("twice disconnects once", func(t *testing.T) {
		t.Parallel()
		var w *scriptedWatcher
		p := New(nil)
		p.Mount(fakeLocator{Home: 0}, nil, scripted(&w))
		p.Unmount()
		p.Unmount()
		if w.disconnects != 1 {
			t.Errorf("Disconnect called %d times, want 1", w.disconnects)
		}
		if p.Mounted() {
			t.Error("page still mounted")
		}
	})

	t.Run("zero observed sections", func(t *testing.T) {
		t.Parallel()
		var w *scriptedWatcher
		p := New(nil)
		p.Mount(fakeLocator{}, nil, scripted(&w))
		if len(w.observed) != 0 {
			t.Fatalf("observed %d sections, want 0", len(w.observed))
		}
		p.Unmount()
		p.Unmount()
	})

	t.Run("never mounted", func(t *testing.T) {
		t.Parallel()
		New(nil).Unmount()
	})

	t.Run("remount releases previous watcher", func(t *testing.T) {
		t.Parallel()
		var first, second *scriptedWatcher
		p := New(nil)
		p.Mount(fakeLocator{Home: 0}, nil, scripted(&first))
		p.Mount(fakeLocator{Home: 0}, nil, scripted(&second))
		if first.disconnects != 1 {
			t.Errorf("first watcher disconnects = %d, want 1", first.disconnects)
		}
		p.Unmount()
		if second.disconnects != 1 {
			t.Errorf("second watcher disconnects = %d, want 1", second.disconnects)
		}
	})

	t.Run("real watcher", func(t *testing.T) {
		t.Parallel()
		var vw *ViewportWatcher
		p := New(nil)
		p.Mount(fakeLocator{}, nil, func(cb Callback) Watcher {
			vw = NewViewportWatcher(cb)
			return vw
		})
		p.Unmount()
		p.Unmount()
		vw.Update(0, 10)
	})
}

func TestRelative(t *testing.T) {
	t.Parallel()

	var w *scriptedWatcher
	p := New(nil)
	p.Mount(fakeLocator{Home: 0, Projects: 10, Skills: 20, Contact: 30}, nil, scripted(&w))

	tests := []struct {
		active ID
		delta  int
		want   ID
	}{
		{Home, 1, Projects},
		{Home, 2, Skills},
		{Home, -1, Home},
		{Projects, -1, Home},
		{Contact, 1, Contact},
		{Contact, -2, Projects},
		{Skills, 10, Contact},
	}

	for _, tt := range tests {
		w.emit(Entry{ID: tt.active, Intersecting: true})
		if got := p.Relative(tt.delta); got != tt.want {
			t.Errorf("Relative(%d) from %q = %q, want %q", tt.delta, tt.active, got, tt.want)
		}
	}
}

func TestMenu(t *testing.T) {
	t.Parallel()

	want := []ID{Home, Education, Projects, Skills, Contact}
	menu := Menu()
	if len(menu) != len(want) {
		t.Fatalf("Menu() has %d items, want %d", len(menu), len(want))
	}
	for i, id := range want {
		if menu[i].ID != id {
			t.Errorf("Menu()[%d] = %q, want %q", i, menu[i].ID, id)
		}
		if IndexOf(id) != i {
			t.Errorf("IndexOf(%q) = %d, want %d", id, IndexOf(id), i)
		}
	}
	if IndexOf("blog") != -1 {
		t.Error("IndexOf unknown should be -1")
	}
}
