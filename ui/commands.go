package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"l2lo/gamedir"
	"l2lo/level"
	"l2lo/unr"
)

func listMaps(l2Dir string) tea.Cmd {
	return func() tea.Msg {
		mapsDir, err := gamedir.FindMapsDir(l2Dir)
		if err != nil {
			return mapsListedMsg{err: err, l2Dir: l2Dir}
		}
		mapFiles, err := gamedir.ListMapFiles(mapsDir)
		if err != nil {
			return mapsListedMsg{err: err, l2Dir: l2Dir}
		}
		return mapsListedMsg{l2Dir: l2Dir, mapsDir: mapsDir, mapFiles: mapFiles}
	}
}

// loadPackage parses the map on bubbletea's command goroutine.
func loadPackage(mapsDir string, mapName string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		pkg, err := unr.Open(filepath.Join(mapsDir, mapName))
		if err != nil {
			return packageLoadedMsg{err: err, mapName: mapName}
		}
		entries, err := level.LoadObjectList(pkg)
		if err != nil {
			return packageLoadedMsg{err: err, mapName: mapName}
		}
		Logger().Info(
			"loaded object list",
			zap.String("map", mapName),
			zap.Int("entries", len(entries)),
			zap.Duration("took", time.Since(start)),
		)
		return packageLoadedMsg{
			mapName:    mapName,
			pkg:        pkg,
			entries:    entries,
			candidates: level.Candidates(pkg),
		}
	}
}
