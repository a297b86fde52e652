package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ruteri/threshold-secret-recovery/cmd/flags"
	"github.com/ruteri/threshold-secret-recovery/combinations"
	"github.com/ruteri/threshold-secret-recovery/document"
	"github.com/ruteri/threshold-secret-recovery/numeral"
	"github.com/ruteri/threshold-secret-recovery/recovery"
	"github.com/urfave/cli/v2"
)

var RecoverServiceLogFlag = flags.LogServiceFlagFn("recover")

var flagDetails *cli.BoolFlag = &cli.BoolFlag{
	Name:  "details",
	Value: false,
	Usage: "print vote counts next to each secret",
}

var flagBase *cli.IntFlag = &cli.IntFlag{
	Name:     "base",
	Required: true,
	Usage:    "numeral base of the digits, 2 to 36",
}

var flagThreshold *cli.IntFlag = &cli.IntFlag{
	Name:     "k",
	Required: true,
	Usage:    "number of items per combination",
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:           "recover",
		Usage:          "Recover secrets from threshold share documents with corrupted shares",
		DefaultCommand: "solve",
		Flags:          append(flags.CommonFlags, RecoverServiceLogFlag),
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "recover the secret of each share document",
				ArgsUsage: "[FILE...]",
				Description: "Reads share documents (JSON, comments allowed) from the given files, " +
					"or from stdin when no file or '-' is given, and prints the majority secret of each.",
				Flags:  append([]cli.Flag{flagDetails}, flags.SolverFlags...),
				Action: solveAction,
			},
			{
				Name:      "decode",
				Usage:     "decode a numeral into decimal",
				ArgsUsage: "DIGITS",
				Flags:     []cli.Flag{flagBase},
				Action: func(cCtx *cli.Context) error {
					if cCtx.Args().Len() != 1 {
						return errors.New("expected exactly one numeral")
					}
					value, err := numeral.Decode(cCtx.Int(flagBase.Name), cCtx.Args().First())
					if err != nil {
						return err
					}
					fmt.Fprintln(cCtx.App.Writer, value.String())
					return nil
				},
			},
			{
				Name:      "combinations",
				Usage:     "list the k-combinations of the given items",
				ArgsUsage: "ITEM...",
				Flags:     []cli.Flag{flagThreshold},
				Action: func(cCtx *cli.Context) error {
					for comb := range combinations.Of(cCtx.Args().Slice(), cCtx.Int(flagThreshold.Name)) {
						fmt.Fprintln(cCtx.App.Writer, strings.Join(comb, " "))
					}
					return nil
				},
			},
		},
	}
}

func solveAction(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)

	cfg, err := flags.ConfigureSolver(cCtx, logger)
	if err != nil {
		return err
	}
	solver := recovery.NewSolver(cfg)

	paths := cCtx.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	failed := 0
	for _, path := range paths {
		docLog := logger.With("document", path)

		doc, err := loadDocument(cCtx.App.Reader, path)
		if err != nil {
			docLog.Error("Failed to load document", "err", err)
			fmt.Fprintf(cCtx.App.Writer, "%s: error: %v\n", path, err)
			failed++
			continue
		}
		for _, key := range doc.Skipped {
			docLog.Warn("Skipping malformed share entry", "x", key)
		}

		res, err := solver.SolveDetailed(cCtx.Context, doc.InputDocument)
		if err != nil {
			docLog.Error("Failed to recover secret", "err", err)
			fmt.Fprintf(cCtx.App.Writer, "%s: error: %v\n", path, err)
			failed++
			continue
		}

		if cCtx.Bool(flagDetails.Name) {
			fmt.Fprintf(cCtx.App.Writer, "%s: %s (votes %d of %d consistent, %d attempted, %d candidates)\n",
				path, res.Secret, res.Votes, res.Consistent, res.Attempted, res.Candidates)
		} else {
			fmt.Fprintf(cCtx.App.Writer, "%s: %s\n", path, res.Secret)
		}
	}

	stats := solver.Stats()
	logger.Info("Finished",
		"documents", len(paths),
		"failed", failed,
		"combinations", stats.Combinations)

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}

func loadDocument(stdin io.Reader, path string) (*document.Document, error) {
	if path != "-" {
		return document.Load(path)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return document.Parse(data)
}
