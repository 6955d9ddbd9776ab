package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-arg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{}, &args)
	require.NoError(t, err)

	err = parser.Parse([]string{"--l2-dir", "/games/L2", "--map", "20_21.unr", "--show-stack-trace"})
	require.NoError(t, err)
	assert.Equal(t, "/games/L2", args.L2Dir)
	assert.Equal(t, "20_21.unr", args.Map)
	assert.True(t, args.ShowStackTrace)
	assert.Equal(t, 413, args.RSAVersion)
	assert.Equal(t, "35", args.RSAExponent)
}

func TestArgs_RSAHelp(t *testing.T) {
	parser, err := arg.NewParser(arg.Config{Program: "l2lo"}, &Args{})
	require.NoError(t, err)

	var help bytes.Buffer
	parser.WriteHelp(&help)
	assert.Contains(t, help.String(), "--rsa-modulus")
	assert.Contains(t, help.String(), `without it they fail with "unsupported Lineage2Ver41x encryption"`)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("")
	require.NoError(t, err)
	logger.Info("discarded")

	path := filepath.Join(t.TempDir(), "l2lo.log")
	logger, err = NewLogger(path)
	require.NoError(t, err)
	logger.Info("written")
	_ = logger.Sync()

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "written")
}

func TestLoadPrefs(t *testing.T) {
	p, err := LoadPrefs(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	assert.Equal(t, "", p.L2Dir())
}
