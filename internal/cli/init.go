package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cfgjs/internal/infra/fsproject"
	"github.com/aalvaropc/cfgjs/internal/usecase"
)

func initCmd(getwd func() (string, error)) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .env.example, seed .env and update .gitignore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(getwd)
			if err != nil {
				return err
			}

			uc := usecase.NewInitProject(fsproject.NewInitializer())
			if err := uc.Execute(p.root, p.cfg, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized %s\n", p.root)
			fmt.Fprintf(out, "Template  %s\n", p.examplePath())
			fmt.Fprintln(out, defaultTheme().Muted.Render(fmt.Sprintf("Edit %s, then run cfgjs", p.definitionsPath())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing .env and .env.example")
	return cmd
}
