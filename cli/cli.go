package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"l2lo/prefs"
	"l2lo/ui"
	"l2lo/unr"
	"l2lo/unr/ucrypt"
)

type (
	Args struct {
		L2Dir          string `arg:"--l2-dir,env:L2LO_L2_DIR" help:"Lineage 2 folder, defaults to the last one used" placeholder:"DIR"`
		Map            string `arg:"--map" help:"map to open right away" placeholder:"20_21.unr"`
		ShowStackTrace bool   `arg:"--show-stack-trace,env:L2LO_SHOW_STACK_TRACE" help:"show stack traces in error messages"`
		LogFile        string `arg:"--log-file,env:L2LO_LOG_FILE" help:"write a debug log to this file" placeholder:"FILE"`
		Prefs          string `arg:"--prefs" help:"preferences file" placeholder:"FILE"`
		RSAVersion     int    `arg:"--rsa-version" default:"413" help:"Lineage2Ver41x version the RSA key is for"`
		RSAModulus     string `arg:"--rsa-modulus,env:L2LO_RSA_MODULUS" help:"hex RSA modulus for Lineage2Ver411-414 maps; without it they fail with \"unsupported Lineage2Ver41x encryption\"" placeholder:"HEX"`
		RSAExponent    string `arg:"--rsa-exponent" default:"35" help:"hex RSA exponent for Lineage2Ver41x maps" placeholder:"HEX"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"L2lo lists the objects referenced by the level of a Lineage 2 map",
			"and lets you remove or add entries.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func NewLogger(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{logFile}
	config.ErrorOutputPaths = []string{logFile}
	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrapf(err, `NewLogger error: "%s"`, logFile)
	}
	return logger, nil
}

func LoadPrefs(path string) (*prefs.Prefs, error) {
	if path == "" {
		defaultPath, err := prefs.DefaultPath()
		if err != nil {
			return nil, errors.Wrap(err, "LoadPrefs error")
		}
		path = defaultPath
	}
	return prefs.Load(path)
}

func Run(args Args) error {
	logger, err := NewLogger(args.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	unr.SetLogger(logger.Named("unr"))
	ui.SetLogger(logger.Named("ui"))

	if args.RSAModulus != "" {
		key, err := ucrypt.ParseRSAKey(args.RSAModulus, args.RSAExponent)
		if err != nil {
			return errors.Wrap(err, "Run error: --rsa-modulus/--rsa-exponent")
		}
		ucrypt.RegisterRSAKey(args.RSAVersion, key)
	}

	p, err := LoadPrefs(args.Prefs)
	if err != nil {
		// start without preferences
		logger.Warn("cannot load preferences, starting without them", zap.Error(err))
		p = nil
	}

	logger.Info("starting", zap.String("l2_dir", args.L2Dir), zap.String("map", args.Map))
	return ui.Start(ui.Options{
		Prefs:          p,
		L2Dir:          args.L2Dir,
		Map:            args.Map,
		ShowStackTrace: args.ShowStackTrace,
	})
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if err := Run(args); err != nil {
		if args.ShowStackTrace {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
