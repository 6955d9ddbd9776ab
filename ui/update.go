package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"l2lo/gamedir"
	"l2lo/unr"
)

const (
	errHeaderFolder = "Cannot open folder"
	errHeaderImport = "Import failed"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case mapsListedMsg:
		return m.onMapsListed(msg)

	case packageLoadedMsg:
		return m.onPackageLoaded(msg)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+o":
			if m.state != stateLoading {
				m.chooseFolder()
			}
			return m, nil
		}
		switch m.state {
		case stateChooseFolder:
			return m.updateChooseFolder(msg)
		case stateChooseMap:
			return m.updateChooseMap(msg)
		case stateList:
			return m.updateList(msg)
		case stateAdd:
			return m.updateAdd(msg)
		}
		return m, nil
	}

	if m.inputActive() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) inputActive() bool {
	return m.state == stateChooseFolder || m.state == stateChooseMap || m.state == stateAdd
}

func (m *Model) resetInput(placeholder string, value string) {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) moveCursor(key string, length int) bool {
	switch key {
	case "up":
		m.cursor = clamp(m.cursor-1, length)
	case "down":
		m.cursor = clamp(m.cursor+1, length)
	case "pgup":
		m.cursor = clamp(m.cursor-m.rows(), length)
	case "pgdown":
		m.cursor = clamp(m.cursor+m.rows(), length)
	default:
		return false
	}
	return true
}

func (m *Model) savePrefs() {
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Save(); err != nil {
		Logger().Warn("cannot save preferences", zap.String("path", m.prefs.Path()), zap.Error(err))
	}
}

func (m *Model) chooseFolder() {
	m.state = stateChooseFolder
	m.cursor = 0
	m.resetInput("path to the Lineage 2 folder", m.l2Dir)
}

func (m *Model) updateChooseFolder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		l2Dir := strings.TrimSpace(m.input.Value())
		if l2Dir == "" {
			return m, nil
		}
		return m, listMaps(l2Dir)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) onMapsListed(msg mapsListedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		Logger().Warn("cannot list maps", zap.String("l2_dir", msg.l2Dir), zap.Error(msg.err))
		m.err, m.errHeader = msg.err, errHeaderFolder
		m.chooseFolder()
		return m, nil
	}

	m.err = nil
	m.l2Dir = msg.l2Dir
	m.mapsDir = msg.mapsDir
	m.mapFiles = msg.mapFiles
	if m.prefs != nil {
		m.prefs.SetL2Dir(m.l2Dir)
		m.savePrefs()
	}

	m.state = stateChooseMap
	m.resetInput("filter maps", "")
	m.mapChoices = m.mapFiles
	m.cursor = max(0, lo.IndexOf(m.mapChoices, m.pendingMap))

	if m.autoLoad && lo.Contains(m.mapFiles, m.pendingMap) {
		m.autoLoad = false
		return m, m.startLoading(m.pendingMap)
	}
	return m, nil
}

func (m *Model) updateChooseMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.moveCursor(key, len(m.mapChoices)) {
		return m, nil
	}
	switch key {
	case "esc":
		m.chooseFolder()
		return m, nil
	case "enter":
		if len(m.mapChoices) == 0 {
			return m, nil
		}
		return m, m.startLoading(m.mapChoices[m.cursor])
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.mapChoices = gamedir.FilterContaining(m.mapFiles, m.input.Value())
	m.cursor = clamp(m.cursor, len(m.mapChoices))
	return m, cmd
}

func (m *Model) startLoading(mapName string) tea.Cmd {
	m.state = stateLoading
	m.err = nil
	m.pendingMap = mapName
	if m.prefs != nil {
		m.prefs.SetLastMap(mapName)
		m.savePrefs()
	}
	Logger().Debug("loading map", zap.String("map", mapName))
	return tea.Batch(m.spinner.Tick, loadPackage(m.mapsDir, mapName))
}

func (m *Model) onPackageLoaded(msg packageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		Logger().Error("import failed", zap.String("map", msg.mapName), zap.Error(msg.err))
		m.err, m.errHeader = msg.err, errHeaderImport
		m.state = stateChooseMap
		m.input.Focus()
		return m, nil
	}

	m.mapName = msg.mapName
	m.pkg = msg.pkg
	m.entries = msg.entries
	m.candidates = msg.candidates
	m.state = stateList
	m.cursor = 0
	m.input.Blur()
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.moveCursor(key, len(m.entries)) {
		return m, nil
	}
	switch key {
	case "k":
		m.cursor = clamp(m.cursor-1, len(m.entries))
	case "j":
		m.cursor = clamp(m.cursor+1, len(m.entries))
	case "d", "delete":
		if len(m.entries) > 0 {
			Logger().Debug("removed entry", zap.String("entry", m.pkg.Display(m.entries[m.cursor])))
			m.entries = removeEntry(m.entries, m.cursor)
			m.cursor = clamp(m.cursor, len(m.entries))
		}
	case "a":
		m.state = stateAdd
		m.cursor = 0
		m.addChoices = m.candidates
		m.resetInput("filter static meshes", "")
	case "esc":
		m.state = stateChooseMap
		m.cursor = max(0, lo.IndexOf(m.mapChoices, m.mapName))
		m.input.Focus()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) filterCandidates(query string) []unr.Entry {
	query = strings.ToLower(query)
	return lo.Filter(
		m.candidates,
		func(entry unr.Entry, _ int) bool {
			return strings.Contains(strings.ToLower(m.pkg.Display(entry)), query)
		},
	)
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.moveCursor(key, len(m.addChoices)) {
		return m, nil
	}
	switch key {
	case "esc":
		m.state = stateList
		m.cursor = clamp(m.cursor, len(m.entries))
		m.input.Blur()
		return m, nil
	case "enter":
		if len(m.addChoices) == 0 {
			return m, nil
		}
		added := m.addChoices[m.cursor]
		Logger().Debug("added entry", zap.String("entry", m.pkg.Display(added)))
		m.entries = appendEntry(m.entries, added)
		m.state = stateList
		m.cursor = len(m.entries) - 1
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.addChoices = m.filterCandidates(m.input.Value())
	m.cursor = clamp(m.cursor, len(m.addChoices))
	return m, cmd
}
