package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
)

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or show configuration files",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand writes the default configuration to a file.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration (TOML or YAML by extension)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}
			printSuccess("Wrote default configuration")
			printFile(path)
			printNextStep("Render it", appName+" render "+path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

// writeDefaultConfig encodes config.Default() to path. Existing files are
// kept unless force is set.
func writeDefaultConfig(path string, force bool) error {
	if err := errs.ValidateConfigPath(path); err != nil {
		return err
	}
	format, err := config.FormatOf(path)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	var buf bytes.Buffer
	if err := config.Encode(&buf, config.Default(), format); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode configuration")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// configShowCommand prints the effective configuration.
func (c *CLI) configShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [config]",
		Short: "Print the effective configuration, defaults included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(format)
			if f != config.FormatTOML && f != config.FormatYAML {
				return errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q (must be toml or yaml)", format)
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			cfg, err := loadConfig(cmd.Context(), input)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), "output format: toml, yaml")

	return cmd
}
