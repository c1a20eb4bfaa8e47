package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/stringx"
)

// options is the state shared by all subcommands of one invocation
type options struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings Settings
	logger   *log.Logger
}

// Execute runs the lu command line
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

// NewRootCmd builds the lu command tree
func NewRootCmd() *cobra.Command {
	opts := &options{settings: DefaultSettings(), logger: log.Discard()}

	rootCmd := &cobra.Command{
		Use:   "lu",
		Short: "lu - text scanning and settings toolkit",
		Long: `lu bundles the lu libraries as a command line tool.

Text:
  nom      - consume input up to a separator
  wrap     - split lines at word boundaries
  indent   - indent lines by a number of tabs
  escape   - make control characters visible
  b64      - base64 encode and decode
  domains  - count shared domain name labels

Settings:
  conf     - show, diff and meld settings files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "settings file (TOML, YAML or native)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text, json or logfmt")

	rootCmd.AddCommand(
		newNomCmd(opts),
		newWrapCmd(opts),
		newIndentCmd(opts),
		newEscapeCmd(opts),
		newB64Cmd(opts),
		newDomainsCmd(opts),
		newConfCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads settings and builds the invocation logger
func (o *options) setup(cmd *cobra.Command) error {
	bootstrap := log.NewWithConfig(log.Config{
		Level:  log.LevelWarn,
		Format: log.FormatText,
		Output: cmd.ErrOrStderr(),
		Name:   "lu",
	})
	if o.verbose {
		bootstrap = bootstrap.WithLevel(log.LevelDebug)
	}

	o.settings = DefaultSettings()
	if err := loadSettings(o.cfgFile, &o.settings, bootstrap); err != nil {
		return err
	}

	level, err := log.ParseLevel(o.settings.LogLevel)
	if err != nil {
		return err
	}
	if o.verbose {
		level = log.LevelDebug
	}

	formatName := o.settings.LogFormat
	if o.logFormat != "" {
		formatName = o.logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "lu",
	}).WithCorrelationID(uuid.New().String())

	o.logger.Debug("starting", log.Fields{"command": cmd.CommandPath(), "config": o.cfgFile})
	return nil
}

// inputLines returns the joined arguments as one line, or the lines of
// stdin when there are none
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// unescape turns a separator typed as \t or \n into the character
func unescape(s string) string {
	if !stringx.Contains(s, '\\', stringx.ScanRaw) {
		return s
	}
	r := strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\r`, "\r", `\\`, `\`)
	return r.Replace(s)
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
