package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	manifest  string   // manifest path when no [dependencies] are configured
	dev       bool     // include development requirements from the manifest
	workflows []string // extra CI workflows to badge
	format    string   // text or json
}

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	opts := listOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print links for every dependency",
		Long: `Print badge and repository links for every dependency.

Dependencies come from the [dependencies] table of the config file. When the
table is absent they are read from the manifest (composer.json by default,
or a Compose file).

Examples:
  dependencies list
  dependencies list --manifest docker-compose.yml
  dependencies list --dev --workflow Tests --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "manifest file (default: composer.json)")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "include development requirements")
	cmd.Flags().StringSliceVarP(&opts.workflows, "workflow", "w", nil, "GitHub Actions workflow to add a status badge for (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text or json")

	return cmd
}

func (c *CLI) runList(cmd *cobra.Command, opts listOpts) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := c.newSession(ctx, opts.workflows)
	if err != nil {
		return err
	}
	defer sess.Close()

	prog := newProgress(c.Logger)
	result, err := sess.runner.Execute(ctx, sess.source(opts.manifest, opts.dev))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built links for %d dependencies", len(result.Links)))

	w := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(w, result)
	}

	if len(result.Links) == 0 {
		printWarning(w, "No dependencies found")
		printDetail(w, "Add a [dependencies] table to %s or point --manifest at a composer.json", c.configPath)
		return nil
	}
	printSuccess(w, "%d dependencies (%s)", len(result.Links), result.Kind)
	for _, l := range result.Links {
		fmt.Fprintln(w)
		printLinks(w, l)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
