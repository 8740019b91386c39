package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/passagequiz/internal/app"
	"github.com/abhisek/passagequiz/internal/workspace"
)

// runApp builds dependencies and launches the TUI. Logs go to a file so
// they do not draw over the screen.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd, depsOptions{logToFile: true, outputDir: "."})
	if err != nil {
		return err
	}
	defer d.close()

	skip, _ := cmd.Flags().GetBool("no-welcome")
	return app.Run(cmd.Context(), app.Options{
		Workspace:   workspace.New(d.generator, d.renderer, d.log),
		Model:       d.provider.ModelID(),
		SkipWelcome: skip,
	})
}
