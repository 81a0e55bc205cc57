package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/infra/dotenv"
	"github.com/aalvaropc/cfgjs/internal/usecase"
)

func keysCmd(getwd func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show which API keys are set in .env (values are not printed)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(getwd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			statuses, err := usecase.NewInspectKeys(dotenv.NewLoader()).Execute(p.definitionsPath())
			if err != nil {
				if domain.IsKind(err, domain.KindMissingDefinitions) {
					printMissingDefinitions(out, p)
					return errReported
				}
				return err
			}

			printKeys(out, statuses)
			return nil
		},
	}
}
