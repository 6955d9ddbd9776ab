package ui

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"l2lo/ds"
	"l2lo/unr"
)

func (m *Model) rows() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) View() string {
	var b strings.Builder

	title := "L2lo"
	if m.l2Dir != "" {
		title = m.l2Dir + " - " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch m.state {
	case stateChooseFolder:
		b.WriteString("Lineage 2 folder:\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: open • esc: quit"))
	case stateChooseMap:
		b.WriteString(okStyle.Render(fmt.Sprintf("%d maps in %s", len(m.mapFiles), m.mapsDir)))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		m.writeRows(&b, m.mapChoices)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: select • enter: load • esc: change folder • ctrl+o: change folder"))
	case stateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading " + m.pendingMap + "...")
	case stateList:
		b.WriteString(okStyle.Render(fmt.Sprintf("%s: %d objects", m.mapName, len(m.entries))))
		b.WriteString("\n\n")
		m.writeRows(&b, m.displayEntries(m.entries))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: select • d: delete • a: add • esc: maps • q: quit"))
	case stateAdd:
		b.WriteString(okStyle.Render(fmt.Sprintf("Add to %s", m.mapName)))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		m.writeRows(&b, m.displayEntries(m.addChoices))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: select • enter: add • esc: back"))
	default:
		panic(ds.ErrUnreachableCode{Caller: "Model.View", Value: m.state})
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(m.errorView())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) displayEntries(entries []unr.Entry) []string {
	rows := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsNone() {
			rows = append(rows, noneStyle.Render(unr.NoneName))
			continue
		}
		rows = append(rows, m.pkg.Display(entry))
	}
	return rows
}

func (m *Model) writeRows(b *strings.Builder, rows []string) {
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (empty)"))
		b.WriteString("\n")
		return
	}
	start, end := visibleRange(m.cursor, len(rows), m.rows())
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + rows[i]))
		} else {
			b.WriteString("  " + rows[i])
		}
		b.WriteString("\n")
	}
}

// errorView shows the root cause under the header, or the whole chain with
// stack traces when they are enabled.
func (m *Model) errorView() string {
	if m.showStackTrace {
		return errorStyle.Render(fmt.Sprintf("%s\n%+v", m.errHeader, m.err))
	}
	cause := errors.Cause(m.err)
	return errorStyle.Render(fmt.Sprintf("%s: %s\n%s", errorTypeName(cause), m.errHeader, cause.Error()))
}

func errorTypeName(err error) string {
	name := fmt.Sprintf("%T", err)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// errors created by errors.New/Errorf carry no useful type
	if name == "fundamental" || name == "errorString" {
		return "Error"
	}
	return name
}
