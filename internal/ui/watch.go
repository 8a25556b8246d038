package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// startWatching watches the content directories of the loader. Embedded
// content is never watched.
func (m *Model) startWatching() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	dirs := m.loader.WatchDirs()
	if len(dirs) == 0 {
		return nil
	}
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}
	for _, dir := range dirs {
		if err := m.fsw.Add(dir); err != nil {
			m.err = err
			return nil
		}
	}
	m.log.Debug("watching content", "dirs", dirs)
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.fsw != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.fsw = watcher
	m.watchChan = make(chan tea.Msg, 10)
	m.watchDone = make(chan struct{})

	go watchLoop(watcher, m.watchChan, m.watchDone)
	return nil
}

// watchLoop forwards watcher events to out until the watcher closes or done
// is closed. A send blocked on a full out also returns once done closes.
func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg, done <-chan struct{}) {
	for {
		var msg tea.Msg
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			msg = fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			msg = fileWatchErrMsg{err: err}
		}
		select {
		case out <- msg:
		case <-done:
			return
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.loader == nil || !m.loader.Affects(msg.path) {
		return m.waitForFileEvent()
	}
	m.log.Debug("content changed", "path", msg.path, "op", msg.op.String())
	m.reloadContent()
	return m.waitForFileEvent()
}

// reloadContent reloads the portfolio and re-renders it at the current
// offset. On failure the previous content stays on screen.
func (m *Model) reloadContent() {
	p, err := m.loader.Load()
	if err == nil && m.techFilter != "" {
		p, err = p.FilterByTech(m.techFilter)
	}
	if err != nil {
		m.err = err
		m.log.Warn("failed to reload content", "error", err)
		return
	}
	m.portfolio = p
	m.relayout()
}

func (m *Model) stopWatching() {
	if m.fsw == nil {
		return
	}
	close(m.watchDone)
	if err := m.fsw.Close(); err != nil {
		m.log.Warn("failed to close file watcher", "error", err)
	}
	m.fsw = nil
}
