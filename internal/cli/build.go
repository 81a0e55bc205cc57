package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cfgjs/internal/app/template"
	"github.com/aalvaropc/cfgjs/internal/infra/jsconfig"
	"github.com/aalvaropc/cfgjs/internal/infra/logger"
	"github.com/aalvaropc/cfgjs/internal/infra/procenv"
	"github.com/aalvaropc/cfgjs/internal/usecase"
)

func buildCmd(getwd func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate config.js from the process environment (CI builds)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(getwd)
			if err != nil {
				return err
			}

			uc := usecase.NewMaterialize(
				procenv.NewLoader(),
				jsconfig.NewWriter(),
				usecase.WithNotice(template.NoticeBuild),
				usecase.WithLogger(logger.L()),
			)
			if err := uc.Execute(cmd.Context(), p.definitionsPath(), p.outputPath()); err != nil {
				return err
			}

			printGenerated(cmd.OutOrStdout(), filepath.Base(p.outputPath()))
			return nil
		},
	}
}
