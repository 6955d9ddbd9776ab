// Package prefs persists the few settings the tool remembers between runs.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

const (
	KeyL2Dir   = "path.l2"
	KeyLastMap = "map.last"
	AppDir     = "l2lo"
	FileName   = "prefs.json"
)

type Prefs struct {
	path   string
	values *orderedmap.OrderedMap
}

func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "DefaultPath error")
	}
	return filepath.Join(configDir, AppDir, FileName), nil
}

// Load reads the preferences at path. A missing file gives empty preferences.
func Load(path string) (*Prefs, error) {
	prefs := Prefs{path: path, values: orderedmap.New()}
	bs, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &prefs, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, `prefs.Load error: read "%s"`, path)
	}
	if err := json.Unmarshal(bs, prefs.values); err != nil {
		return nil, errors.Wrapf(err, `prefs.Load error: parse "%s"`, path)
	}
	return &prefs, nil
}

func (p *Prefs) Path() string {
	return p.path
}

func (p *Prefs) getString(key string) string {
	value, ok := p.values.Get(key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func (p *Prefs) L2Dir() string {
	return p.getString(KeyL2Dir)
}

func (p *Prefs) SetL2Dir(l2Dir string) {
	p.values.Set(KeyL2Dir, l2Dir)
}

func (p *Prefs) LastMap() string {
	return p.getString(KeyLastMap)
}

func (p *Prefs) SetLastMap(fileName string) {
	p.values.Set(KeyLastMap, fileName)
}

func (p *Prefs) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return errors.Wrapf(err, `prefs.Save error: create folder for "%s"`, p.path)
	}
	bs, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "prefs.Save error: marshal")
	}
	if err := os.WriteFile(p.path, bs, 0644); err != nil {
		return errors.Wrapf(err, `prefs.Save error: write "%s"`, p.path)
	}
	return nil
}
