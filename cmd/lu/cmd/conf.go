package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/lu/core/config"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/reflectx"
	"github.com/msto63/lu/utils/serialx"
	"github.com/msto63/lu/utils/stringx"
)

func newConfCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conf",
		Short: "Show, diff and meld settings files",
		Long: `Works with lu settings files. A settings file is TOML, YAML or the
native format of [Section] headers and aligned key/value lines:

  [Settings]
  wrapWidth    100
  logLevel     debug

Environment variables like LU_WRAP_WIDTH override every file.`,
	}

	cmd.AddCommand(
		newConfShowCmd(opts),
		newConfDiffCmd(opts),
		newConfMeldCmd(opts),
		newConfJustifyCmd(opts),
		newConfCheckCmd(opts),
	)
	return cmd
}

func newConfShowCmd(opts *options) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), format, &opts.settings)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "native", "output format: native, toml or yaml")
	return cmd
}

func newConfDiffCmd(opts *options) *cobra.Command {
	var (
		asserts     bool
		assignments bool
	)

	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Compare the effective settings with a file",
		Long: `Lists the settings that differ between the effective settings and
another settings file. --assignments and --asserts print Go statements
instead, for pasting into code or tests.

Examples:
  lu conf diff other.conf
  lu --config a.toml conf diff b.toml --asserts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			other, err := loadSettingsFile(args[0], opts.logger)
			if err != nil {
				return err
			}

			entries, err := reflectx.ComputeDelta(&opts.settings, &other)
			if err != nil {
				return err
			}
			opts.logger.Debug("computed delta", log.Fields{"file": args[0], "changes": len(entries)})

			out := cmd.OutOrStdout()
			switch {
			case asserts:
				fmt.Fprint(out, reflectx.FormatDelta(entries, reflectx.DeltaAsserts, "settings"))
			case assignments:
				fmt.Fprint(out, reflectx.FormatDelta(entries, reflectx.DeltaAssignments, "settings"))
			default:
				fmt.Fprint(out, renderDelta(entries, args[0], newDeltaStyles(opts.settings.Color)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asserts, "asserts", false, "print assert.Equal statements")
	cmd.Flags().BoolVar(&assignments, "assignments", false, "print assignment statements")
	cmd.MarkFlagsMutuallyExclusive("asserts", "assignments")
	return cmd
}

// renderDelta formats entries as "path  old -> new" lines under a header
func renderDelta(entries []reflectx.DeltaEntry, name string, styles deltaStyles) string {
	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("%d %s differ from %s",
		len(entries), stringx.Plurality(len(entries), "setting", "settings"), name)))
	b.WriteByte('\n')

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Path))
	}
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(styles.Path.Render(e.Path))
		b.WriteString(strings.Repeat(" ", width-len(e.Path)+serialx.Padding))
		b.WriteString(styles.Old.Render(displayValue(e.Old)))
		b.WriteString(styles.Arrow.Render(" -> "))
		b.WriteString(styles.New.Render(displayValue(e.New)))
		b.WriteByte('\n')
	}
	return b.String()
}

func displayValue(s string) string {
	if s == "" {
		return `""`
	}
	return stringx.EscapeControlCharacters(s)
}

func newConfMeldCmd(opts *options) *cobra.Command {
	var (
		overwrite  bool
		output     string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "meld <file>",
		Short: "Merge a settings file into the effective settings",
		Long: `Merges another settings file into the effective settings and prints
the result. By default only settings still at their default value are
taken from the file; --overwrite lets every non-default value in the file
win.

Examples:
  lu --config mine.conf conf meld team.conf --out merged.conf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := loadSettingsFile(args[0], opts.logger)
			if err != nil {
				return err
			}

			policy := reflectx.FillOnlyIfTargetIsDefault
			if overwrite {
				policy = reflectx.OverwriteSourceWins
			}

			merged := opts.settings
			if err := reflectx.Meld(&source, &merged, policy); err != nil {
				return err
			}
			opts.logger.Debug("melded settings", log.Fields{"file": args[0], "policy": policy.String()})

			format, err := config.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if output != "" {
				if err := config.Save(output, format, &merged); err != nil {
					return err
				}
				opts.logger.Info("wrote settings", log.Fields{"path": output})
				return nil
			}
			return config.Encode(cmd.OutOrStdout(), format, &merged)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "let the file's non-default values win")
	cmd.Flags().StringVarP(&output, "out", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVarP(&formatName, "format", "f", "auto", "output format: native, toml, yaml or auto")
	return cmd
}

func newConfJustifyCmd(opts *options) *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "justify <file>",
		Short: "Realign the values of a native settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			justified := serialx.Justify(string(content))
			if inPlace {
				opts.logger.Debug("justified file", log.Fields{"path": args[0]})
				return os.WriteFile(args[0], []byte(justified), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), justified)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite the file in place")
	return cmd
}

func newConfCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report missing, invalid and unknown settings in a native file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			s := DefaultSettings()
			result, err := serialx.DeserializeWithOptions(f, serialx.Options{Logger: opts.logger}, &s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Clean() {
				fmt.Fprintln(out, "ok")
				return nil
			}
			for _, key := range result.Missing[SettingsSection] {
				fmt.Fprintf(out, "missing  %s\n", key)
			}
			for _, key := range result.Invalid[SettingsSection] {
				fmt.Fprintf(out, "invalid  %s\n", key)
			}
			for _, name := range result.UnknownSections {
				fmt.Fprintf(out, "unknown  [%s]\n", name)
			}
			for _, line := range result.Malformed {
				fmt.Fprintf(out, "malformed  %s\n", line)
			}
			return nil
		},
	}
	return cmd
}
