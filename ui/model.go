// Package ui is the interactive shell: choose a Lineage 2 folder, pick a map
// and edit the object list of its level.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"l2lo/prefs"
	"l2lo/unr"
)

type (
	Options struct {
		Prefs          *prefs.Prefs
		L2Dir          string
		Map            string
		ShowStackTrace bool
	}
	Model struct {
		prefs          *prefs.Prefs
		showStackTrace bool
		state          modelState
		input          textinput.Model
		spinner        spinner.Model
		height         int
		err            error
		errHeader      string

		l2Dir      string
		mapsDir    string
		mapFiles   []string
		mapChoices []string
		pendingMap string
		autoLoad   bool

		mapName    string
		pkg        *unr.Package
		entries    []unr.Entry
		candidates []unr.Entry
		addChoices []unr.Entry

		cursor int
	}
	modelState int

	mapsListedMsg struct {
		err      error
		l2Dir    string
		mapsDir  string
		mapFiles []string
	}
	packageLoadedMsg struct {
		err        error
		mapName    string
		pkg        *unr.Package
		entries    []unr.Entry
		candidates []unr.Entry
	}
)

const (
	stateChooseFolder modelState = iota
	stateChooseMap
	stateLoading
	stateList
	stateAdd
)

const (
	defaultHeight = 24
	// rows used by the title, input, status and help lines
	chromeHeight = 8
)

func NewModel(opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "

	m := &Model{
		prefs:          opts.Prefs,
		showStackTrace: opts.ShowStackTrace,
		state:          stateChooseFolder,
		input:          input,
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		height:         defaultHeight,
		pendingMap:     opts.Map,
		autoLoad:       opts.Map != "",
	}

	l2Dir := opts.L2Dir
	if l2Dir == "" && m.prefs != nil {
		l2Dir = m.prefs.L2Dir()
	}
	if m.pendingMap == "" && m.prefs != nil {
		m.pendingMap = m.prefs.LastMap()
	}
	m.input.Placeholder = "path to the Lineage 2 folder"
	m.input.SetValue(l2Dir)
	m.input.Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.input.Value() != "" {
		cmds = append(cmds, listMaps(m.input.Value()))
	}
	return tea.Batch(cmds...)
}
