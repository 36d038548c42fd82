package main

import (
	"context"
	"errors"
	"io"

	"github.com/YLivay/hexdump/hexdump"
	"github.com/YLivay/hexdump/log"
	"github.com/urfave/cli/v3"
)

const usageHint = "Usage: hexdump [OPTIONS] <FILE>\nTry hexdump --help for more info."

// ArgumentError is returned for anything wrong with the command line itself:
// unknown flags, bad flag values, or a missing or extra FILE argument.
type ArgumentError struct {
	Message string
	Err     error
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// parseArgs turns the command line (without the program name) into a dump
// configuration. If shouldExit is true the help text was printed to stdout
// and there is nothing left to do.
func parseArgs(args []string, stdout, stderr io.Writer) (cfg hexdump.Config, shouldExit bool, err error) {
	parsed := false

	cmd := &cli.Command{
		Name:            "hexdump",
		Usage:           "print the contents of a file in hex",
		ArgsUsage:       "<FILE>",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "n",
				Usage: "total number of bytes to read (will not read past EOF)",
			},
			&cli.Uint64Flag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "number of bytes to print per line",
				Value:   hexdump.DefaultWidth,
			},
			&cli.Uint64Flag{
				Name:    "chunk-size",
				Aliases: []string{"c"},
				Usage:   "number of bytes per space separated chunk",
				Value:   hexdump.DefaultChunkSize,
			},
			&cli.Uint64Flag{
				Name:    "start-offset",
				Aliases: []string{"s"},
				Usage:   "starting offset to read the file from",
			},
			&cli.BoolFlag{
				Name:    "translate",
				Aliases: []string{"t"},
				Usage:   "enable in-line ASCII translation",
			},
			&cli.BoolFlag{
				Name:    "no-offset",
				Aliases: []string{"o"},
				Usage:   "disable the offset column",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log what is being read to stderr",
			},
		},
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return &ArgumentError{Message: err.Error(), Err: err}
		},
		// Exit codes are decided by run, never by the cli package.
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			switch cmd.Args().Len() {
			case 0:
				return &ArgumentError{Message: "missing required argument <FILE>", Err: hexdump.ErrNoFile}
			case 1:
			default:
				return &ArgumentError{Message: "unexpected value: " + cmd.Args().Get(1)}
			}

			cfg = hexdump.Config{
				FilePath:    cmd.Args().First(),
				Width:       cmd.Uint64("width"),
				ChunkSize:   cmd.Uint64("chunk-size"),
				StartOffset: cmd.Uint64("start-offset"),
				ShowOffset:  !cmd.Bool("no-offset"),
				Translate:   cmd.Bool("translate"),
			}
			if cmd.IsSet("n") {
				limit := cmd.Uint64("n")
				cfg.ByteLimit = &limit
			}
			if err := cfg.Validate(); err != nil {
				return &ArgumentError{Message: err.Error(), Err: err}
			}

			log.SetOutput(stderr)
			log.SetVerbose(cmd.Bool("verbose"))
			log.Debugf("dumping %s with width %d and chunk size %d", cfg.FilePath, cfg.Width, cfg.ChunkSize)

			parsed = true
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{"hexdump"}, args...)); err != nil {
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			err = &ArgumentError{Message: err.Error(), Err: err}
		}
		return hexdump.Config{}, false, err
	}

	// The command returns cleanly without running the action when it printed
	// the help text.
	if !parsed {
		return hexdump.Config{}, true, nil
	}

	return cfg, false, nil
}
