package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/stringx"
)

func newNomCmd(opts *options) *cobra.Command {
	var (
		inherit bool
		decode  bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "nom <separator> [text]",
		Short: "Consume input up to a separator",
		Long: `Splits each input line at the first separator and prints the consumed
part and the rest, separated by a tab. Escapes like \t are accepted.

Examples:
  lu nom : "nick!user@host: hello"
  lu nom --all , "a,b,c"
  lu nom --inherit ' ' single`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := unescape(args[0])
			lines, err := inputLines(cmd, args[1:])
			if err != nil {
				return err
			}

			mode := stringx.ScanRaw
			if decode {
				mode = stringx.ScanDecode
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				view := line
				if all {
					for view != "" {
						token, err := stringx.AdvancePastOrInherit(&view, sep, mode)
						if err != nil {
							return err
						}
						fmt.Fprintln(out, token)
					}
					continue
				}

				var token string
				if inherit {
					token, err = stringx.AdvancePastOrInherit(&view, sep, mode)
				} else {
					token, err = stringx.AdvancePast(&view, sep, mode)
				}
				if errors.IsSeparatorNotFound(err) {
					opts.logger.Warn("separator not found", log.Fields{"separator": sep, "line": line})
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", token, view)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inherit, "inherit", false, "take the whole line when the separator is missing")
	cmd.Flags().BoolVar(&decode, "decode", false, "only match the separator at character boundaries")
	cmd.Flags().BoolVar(&all, "all", false, "print every token on its own line")
	return cmd
}

func newWrapCmd(opts *options) *cobra.Command {
	var (
		width int
		sep   string
	)

	cmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "Split lines at word boundaries",
		Long: `Splits each input line into pieces no longer than the wrap width,
cutting only at the separator. Words longer than the width are kept whole.

Examples:
  lu wrap --width 20 "the quick brown fox jumps over the lazy dog"
  cat notes.txt | lu wrap`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				width = opts.settings.WrapWidth
			}
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				pieces, err := stringx.SplitOnWord(line, unescape(sep), width)
				if err != nil {
					return err
				}
				if len(pieces) == 0 {
					fmt.Fprintln(out)
				}
				for _, piece := range pieces {
					fmt.Fprintln(out, piece)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "maximum line length (default from settings)")
	cmd.Flags().StringVar(&sep, "sep", " ", "word separator")
	return cmd
}

func newIndentCmd(opts *options) *cobra.Command {
	var tabs int

	cmd := &cobra.Command{
		Use:   "indent [text]",
		Short: "Indent lines by a number of tabs",
		Long: `Prefixes every non-empty input line with spaces. One tab is as wide
as the tabWidth setting.

Examples:
  lu indent --tabs 2 < snippet.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tabs") {
				tabs = opts.settings.Indent
			}
			if tabs < 0 {
				return errors.InvalidArgument(errors.ModuleStringx, "indent", tabs, "non-negative tab count")
			}

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.IndentWidth(text, tabs, opts.settings.TabWidth))
			return nil
		},
	}

	cmd.Flags().IntVar(&tabs, "tabs", 1, "number of tabs (default from settings)")
	return cmd
}

func newEscapeCmd(opts *options) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "escape [text]",
		Short: "Make control characters visible",
		Long: `Replaces \r, \n, \t and NUL in the input with visible escapes, or
removes them with --remove. Stdin is read whole so line breaks are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			if remove {
				text = stringx.RemoveControlCharacters(text)
			} else {
				text = stringx.EscapeControlCharacters(text)
			}
			opts.logger.Debug("escaped input", log.Fields{"bytes": len(text), "remove": remove})
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "remove control characters instead of escaping them")
	return cmd
}

func newB64Cmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b64",
		Short: "Base64 encode and decode",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode [text]",
		Short: "Encode input as standard base64",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.EncodeBase64([]byte(text)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode [text]",
		Short: "Decode standard base64 input",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			data, err := stringx.DecodeBase64(stringx.Trim(text))
			if err != nil {
				opts.logger.LogError(err)
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}

func newDomainsCmd(opts *options) *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "domains <a> <b>",
		Short: "Count shared domain name labels",
		Long: `Prints how many trailing labels two domain names share.

Examples:
  lu domains irc.libera.chat web.libera.chat   # 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := stringx.SharedDomainSuffixCount(args[0], args[1])
			if fold {
				count = stringx.SharedDomainSuffixCountFold(args[0], args[1])
			}
			opts.logger.Debug("compared domains", log.Fields{"a": args[0], "b": args[1], "fold": fold})
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fold, "ignore-case", "i", false, "compare labels case-insensitively")
	return cmd
}

// inputText returns the joined arguments, or all of stdin
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, cmd.InOrStdin()); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
