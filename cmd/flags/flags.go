package flags

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/ruteri/threshold-secret-recovery/common"
	"github.com/ruteri/threshold-secret-recovery/recovery"
	"github.com/urfave/cli/v2"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String("log-service")

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
		Output:  cCtx.App.ErrWriter,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// ConfigureSolver builds the solver configuration from the solver flags.
func ConfigureSolver(cCtx *cli.Context, logger *slog.Logger) (recovery.Config, error) {
	tieBreak, err := recovery.ParseTieBreak(cCtx.String(TieBreakFlag.Name))
	if err != nil {
		return recovery.Config{}, err
	}

	return recovery.Config{
		MaxCombinations: cCtx.Uint64(MaxCombinationsFlag.Name),
		TieBreak:        tieBreak,
		Log:             logger,
	}, nil
}

var MaxCombinationsFlag = &cli.Uint64Flag{
	Name:  "max-combinations",
	Value: 0,
	Usage: "maximum number of share combinations to interpolate per document, 0 for no limit",
}

var TieBreakFlag = &cli.StringFlag{
	Name:  "tie-break",
	Value: recovery.TieBreakFirstSeen.String(),
	Usage: "rule for equally voted secrets: 'first-seen' or 'smallest'",
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}

var LogServiceFlagFn = func(service string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "log-service",
		Value: service,
		Usage: "add 'service' tag to logs",
	}
}

var SolverFlags = []cli.Flag{
	MaxCombinationsFlag,
	TieBreakFlag,
}

var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
}
