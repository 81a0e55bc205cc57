package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/infra/dotenv"
	"github.com/aalvaropc/cfgjs/internal/infra/jsconfig"
	"github.com/aalvaropc/cfgjs/internal/infra/logger"
	"github.com/aalvaropc/cfgjs/internal/usecase"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, defaultTheme().Error.Render("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(os.Getwd)
}

// newRootCmdWith builds the command tree with an injectable working directory.
func newRootCmdWith(getwd func() (string, error)) *cobra.Command {
	var debug bool
	cleanup := func() {}

	cmd := &cobra.Command{
		Use:           "cfgjs",
		Short:         "Generate config.js from .env",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cleanup = logger.Setup(logger.Config{Writer: cmd.ErrOrStderr(), Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			cleanup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(getwd)
			if err != nil {
				return err
			}

			uc := usecase.NewMaterialize(
				dotenv.NewLoader(),
				jsconfig.NewWriter(),
				usecase.WithLogger(logger.L()),
			)

			out := cmd.OutOrStdout()
			if err := uc.Execute(cmd.Context(), p.definitionsPath(), p.outputPath()); err != nil {
				if domain.IsKind(err, domain.KindMissingDefinitions) {
					printMissingDefinitions(out, p)
					return errReported
				}
				return err
			}

			printGenerated(out, p.outputPath())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")

	cmd.AddCommand(buildCmd(getwd))
	cmd.AddCommand(initCmd(getwd))
	cmd.AddCommand(keysCmd(getwd))
	cmd.AddCommand(versionCmd())
	return cmd
}
