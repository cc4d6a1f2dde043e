package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
An example command line application. It greets the people named on the command
line, or the world when nobody is named.

The application ships with:

  • structured help text and version info (-help, -version)
  • shell completion generation for bash, zsh, fish, and PowerShell
  • a gen-docs helper that emits Markdown reference docs for the CLI itself
`

type greetOptions struct {
	greeting string
	shout    bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts greetOptions
	cmd := &cobra.Command{
		Use:           appName + " [flags] [name...]",
		Short:         "Greet people from the command line",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetVersionTemplate(versionText())
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&opts.greeting, "greeting", "g", "Hello", "greeting to use")
	flags.BoolVarP(&opts.shout, "shout", "s", false, "print the greeting in upper case")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return greet(cmd.OutOrStdout(), opts, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func greet(w io.Writer, opts greetOptions, names []string) error {
	if strings.TrimSpace(opts.greeting) == "" {
		return fmt.Errorf("greeting must not be empty")
	}
	who := "world"
	if len(names) > 0 {
		who = joinNames(names)
	}
	line := fmt.Sprintf("%s, %s!", opts.greeting, who)
	if opts.shout {
		line = strings.ToUpper(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// completionWriters maps each supported shell to its cobra generator. The
// bool asks for descriptions next to each completion candidate.
var completionWriters = map[string]func(root *cobra.Command, w io.Writer, descriptions bool) error{
	"bash": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		return root.GenBashCompletionV2(w, descriptions)
	},
	"zsh": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		if descriptions {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	},
	"fish": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		return root.GenFishCompletion(w, descriptions)
	},
	"powershell": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		if descriptions {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	},
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	longDesc := strings.NewReplacer("APP", appName).Replace(`
Print a shell completion script for APP.

Load it into the current shell, or install it for every new session:

  # bash
  source <(APP completion bash)
  APP completion bash > /usr/local/etc/bash_completion.d/APP

  # zsh
  APP completion zsh > "${fpath[1]}/_APP"

  # fish
  APP completion fish > ~/.config/fish/completions/APP.fish

  # PowerShell
  APP completion powershell | Out-String | Invoke-Expression

Candidate descriptions are included unless --no-descriptions is given.
`)
	var noDescriptions bool
	cmd := &cobra.Command{
		Use:           "completion [bash|zsh|fish|powershell]",
		Short:         "Generate shell completion scripts",
		Long:          strings.TrimSpace(longDesc),
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&noDescriptions, "no-descriptions", false, "leave candidate descriptions out of the script")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		write, ok := completionWriters[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return write(root, cmd.OutOrStdout(), !noDescriptions)
	}
	return cmd
}

const defaultDocsDir = "docs/cli"

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write one Markdown page per command of ` + appName + `, ready to publish next to
the README. Pages go to ` + defaultDocsDir + ` unless another directory is given,
and each written page is listed on stdout.
`),
		Example:       "  " + appName + " gen-docs\n  " + appName + " gen-docs ./site/reference",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := defaultDocsDir
		if len(args) == 1 {
			target = args[0]
		}
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("target directory must not be empty")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		if err := cobradoc.GenMarkdownTree(root, target); err != nil {
			return err
		}
		pages, err := filepath.Glob(filepath.Join(target, "*.md"))
		if err != nil {
			return err
		}
		sort.Strings(pages)
		for _, page := range pages {
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", page)
		}
		return nil
	}
	return cmd
}
