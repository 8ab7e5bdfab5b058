package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {

	app := &cli.App{
		Name:    "cellinspect",
		Usage:   "inspect cells, bit slices and bag-of-cells headers",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"CELLINSPECT_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		_, err := configLogger(cctx, cctx.App.ErrWriter)
		return err
	}
	app.Commands = []*cli.Command{
		cmdPrefix,
		cmdBits,
		cmdTree,
	}
	return app
}

// configLogger installs a text slog handler on writer as the default logger,
// at the level named by --log-level.
func configLogger(cctx *cli.Context, writer io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown --log-level %q", cctx.String("log-level"))
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
