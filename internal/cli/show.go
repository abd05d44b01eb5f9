package cli

import (
	"github.com/spf13/cobra"

	"github.com/sfneal/dependencies/pkg/deps"
	"github.com/sfneal/dependencies/pkg/integrations"
)

// showCommand creates the show command for a single dependency.
func (c *CLI) showCommand() *cobra.Command {
	var (
		depType   string
		workflows []string
		format    = formatText
	)

	cmd := &cobra.Command{
		Use:   "show <vendor/name|github-url>",
		Short: "Print links for one dependency",
		Long: `Print badge and repository links for a single dependency, whether or not
it is configured.

Examples:
  dependencies show sfneal/caching
  dependencies show https://github.com/sfneal/caching
  dependencies show sfneal/php --type docker
  dependencies show sfneal/scripts --type custom --workflow Tests`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			ctx := cmd.Context()
			sess, err := c.newSession(ctx, workflows)
			if err != nil {
				return err
			}
			defer sess.Close()

			name := args[0]
			if owner, repo, ok := integrations.ParseOwnerRepo(name); ok {
				name = owner + "/" + repo
			}
			dep := deps.Dependency{Name: name, Type: deps.ParseType(depType)}
			if !dep.Type.Known() {
				c.Logger.Debug("custom dependency type, using GitHub links", "type", dep.Type)
			}
			if err := sess.runner.Set(dep).Validate(); err != nil {
				return err
			}

			links, err := sess.runner.Summary(ctx, dep)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(w, links)
			}
			printLinks(w, links)
			return nil
		},
	}

	cmd.Flags().StringVarP(&depType, "type", "t", string(deps.TypeComposer), "dependency type: composer, docker or a custom name")
	cmd.Flags().StringSliceVarP(&workflows, "workflow", "w", nil, "GitHub Actions workflow to add a status badge for (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: text or json")

	return cmd
}
