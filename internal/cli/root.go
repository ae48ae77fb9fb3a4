package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/seohelper/pkg/buildinfo"
	"github.com/matzehuels/seohelper/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// Before any command runs, the logger is attached to the command context and
// registered as the observability backend.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "seohelper renders SEO meta tags for web pages",
		Long:          `seohelper renders the <title>, description, keywords, canonical link, webmaster verification, Open Graph and Twitter Card tags of a web page from a TOML or YAML configuration.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			c.installHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes library events to the CLI logger.
func (c *CLI) installHooks() {
	hooks := &logHooks{logger: c.Logger}
	observability.SetConfigHooks(hooks)
	observability.SetRenderHooks(hooks)
	observability.SetHTTPHooks(hooks)
}
