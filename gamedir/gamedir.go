// Package gamedir locates map packages inside a Lineage 2 installation.
package gamedir

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	MapsDirName   = "maps"
	MapFileSuffix = ".unr"
)

type (
	ErrMapsDirNotFound struct {
		Caller string
		L2Dir  string
	}
)

func (r ErrMapsDirNotFound) Error() string {
	return r.Caller + `: no "` + MapsDirName + `" folder in "` + r.L2Dir + `"`
}

// statMode follows symbolic links. Entries that cannot be stat'ed, such as
// dangling links, report an irregular mode.
func statMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fs.ModeIrregular
	}
	return info.Mode()
}

// FindMapsDir returns the child of l2Dir named "maps", ignoring case.
func FindMapsDir(l2Dir string) (string, error) {
	entries, err := os.ReadDir(l2Dir)
	if err != nil {
		return "", errors.Wrapf(err, `FindMapsDir error: read "%s"`, l2Dir)
	}
	entry, found := lo.Find(
		entries,
		func(entry fs.DirEntry) bool {
			return strings.EqualFold(entry.Name(), MapsDirName) &&
				statMode(filepath.Join(l2Dir, entry.Name())).IsDir()
		},
	)
	if !found {
		return "", ErrMapsDirNotFound{Caller: "FindMapsDir", L2Dir: l2Dir}
	}
	return filepath.Join(l2Dir, entry.Name()), nil
}

// ListMapFiles returns the names of the regular ".unr" files in mapsDir, sorted.
func ListMapFiles(mapsDir string) ([]string, error) {
	entries, err := os.ReadDir(mapsDir)
	if err != nil {
		return nil, errors.Wrapf(err, `ListMapFiles error: read "%s"`, mapsDir)
	}

	mapFiles := lo.Filter(
		entries,
		func(entry fs.DirEntry, _ int) bool {
			return strings.HasSuffix(entry.Name(), MapFileSuffix) &&
				statMode(filepath.Join(mapsDir, entry.Name())).IsRegular()
		},
	)
	fileNames := lo.Map(
		mapFiles,
		func(entry fs.DirEntry, _ int) string {
			return entry.Name()
		},
	)
	sort.Strings(fileNames)
	return fileNames, nil
}

// FilterContaining keeps the items that contain query, ignoring case. An empty
// query keeps everything.
func FilterContaining(items []string, query string) []string {
	query = strings.ToLower(query)
	return lo.Filter(
		items,
		func(item string, _ int) bool {
			return strings.Contains(strings.ToLower(item), query)
		},
	)
}
