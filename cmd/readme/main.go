// Command readme regenerates README.md by running the documented command
// examples and embedding their real output, so the examples in the README are
// known to still work.
//
//	go run ./cmd/readme -o
//	go run ./cmd/readme > README.md
//
// Every command example is executed for real in the project root.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AstromechZA/go-cli-template/internal/config"
	"github.com/AstromechZA/go-cli-template/internal/logging"
	"github.com/AstromechZA/go-cli-template/internal/project"
	"github.com/AstromechZA/go-cli-template/internal/readme"
	"github.com/spf13/cobra"
)

const defaultOutput = "README.md"

const (
	projectName = "go-cli-template"
	importPath  = "github.com/AstromechZA/go-cli-template"
)

// main_test.go refers to these aliases only, so it needs no module-qualified
// import when the renamer rewrites go.mod.
type commandRunner = readme.Runner

type cmdResult = readme.CmdResult

type options struct {
	output     string
	check      bool
	strict     bool
	configPath string
	logFormat  string
	verbosity  int
}

// environment carries what main resolves from the process so tests can
// substitute it.
type environment struct {
	root   string
	stdout io.Writer
	stderr io.Writer
	runner commandRunner
}

func main() {
	root, err := project.ToolRoot(project.SourceFile(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "readme:", err)
		os.Exit(1)
	}
	env := environment{root: root, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintln(os.Stderr, "readme:", err)
		os.Exit(1)
	}
}

func run(argv []string, env environment) error {
	cmd := newRootCmd(env)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(env environment) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "readme [-o [FILE]]",
		Short: "Regenerate the README with live command output",
		Long: strings.TrimSpace(`
readme builds the project README in memory, running every documented command
example in the project root and embedding its combined output. The result is
printed to stdout, or written to a file with -o=FILE (README.md when -o is given
alone). Relative paths resolve against the project root.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the README to FILE (-o=FILE) instead of stdout; -o alone writes "+defaultOutput)
	flags.Lookup("output").NoOptDefVal = defaultOutput
	flags.BoolVar(&opts.check, "check", false, "fail if the output file differs from the generated README instead of writing it")
	flags.BoolVar(&opts.strict, "strict", false, "fail when a command example exits non-zero")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default <root>/"+config.FileName+")")
	flags.StringVar(&opts.logFormat, "log-format", logging.TextFormat, "log format: text or json")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "log each command example as it runs (repeatable)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return generate(ctx, cmd, env, opts)
	}
	return cmd
}

func generate(ctx context.Context, cmd *cobra.Command, env environment, opts options) error {
	log, err := logging.New("readme", opts.logFormat, opts.verbosity, env.stderr)
	if err != nil {
		return err
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.FileName
	}
	cfg, err := config.Load(config.Resolve(env.root, cfgPath))
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("output") {
		opts.output = cfg.Readme.Output
	}
	if !cmd.Flags().Changed("strict") {
		opts.strict = cfg.Readme.Strict
	}
	if opts.check && (opts.output == "" || opts.output == "-") {
		opts.output = defaultOutput
	}
	output := config.Resolve(env.root, opts.output)

	genOpts := []readme.Option{readme.WithLogger(log), readme.WithStrict(opts.strict)}
	if env.runner != nil {
		genOpts = append(genOpts, readme.WithRunner(env.runner))
	}
	g := readme.NewGenerator(env.root, genOpts...)
	if err := build(ctx, g); err != nil {
		return err
	}
	if err := g.Err(); err != nil {
		return err
	}

	if opts.check {
		if err := readme.Check(output, g.Bytes()); err != nil {
			return err
		}
		log.Info("README is up to date", "path", output)
		return nil
	}
	if err := readme.WriteOutput(output, env.stdout, g.Bytes()); err != nil {
		return err
	}
	if output != "" && output != "-" {
		log.Info("Wrote README", "path", output)
	}
	return nil
}

// build describes the README content.
func build(ctx context.Context, g *readme.Generator) error {
	// Paragraph bodies open on their own line; drop that first newline.
	paragraph := func(text string) { g.Paragraph(strings.TrimPrefix(text, "\n")) }

	g.H1("`" + projectName + "` - an example Go CLI application")
	if err := g.PackageDoc(ctx, ".", 1); err != nil {
		return err
	}
	paragraph(`
    This is an example repository that can be cloned and adapted for a new application. It contains useful
    programs and automation for building simple CLI-based applications.
    `)

	g.H3("Example usage:")
	g.CommandExample(ctx, "./"+projectName+" -version")
	g.CommandExample(ctx, "./"+projectName+" -help")

	g.H3("Steps for setting up a new project from this template")
	paragraph(`
    1. Clone the repository

    ` + "```" + `
    $ git clone https://` + importPath + `.git
    ` + "```" + `

    2. Rename all references to ` + "`" + projectName + "`" + ` and the project url

    ` + "```" + `
    $ go run ./cmd/rename github.com/<user>/<repo>
    ` + "```" + `

    The rename tool rewrites the import path in a handful of known files and then deletes itself.

    3. Tweak the git repo

    You can either delete the ` + "`.git`" + ` directory and re-run ` + "`git init`" + ` or you can
    just change the push/pull remotes and continue from there.
    `)

	g.H3("Dependencies")
	paragraph(`
    Dependencies are managed with Go modules. ` + "`go.mod`" + ` anchors the dependency versions; run
    ` + "`go mod tidy`" + ` after adding or removing imports.
    `)

	g.H3("Regenerating this README")
	paragraph(`
    This README is generated by ` + "`cmd/readme`" + `, which runs each example command and embeds its
    output. Use ` + "`go run ./cmd/readme -o`" + ` to rewrite it, or ` + "`go run ./cmd/readme --check`" + ` in CI to
    fail when it is out of date.
    `)

	g.H3("Building your project")
	g.CommandExample(ctx, "go build -v "+importPath)

	g.H3("Official Builds")
	paragraph(`
    The provided ` + "`make_official.sh`" + ` script will build official builds for both Linux and OSX with an official
    version number baked in. It also compresses a ` + "`tgz`" + ` archive containing the built binaries for upload to
    Github or whatever release mechanism is being used.
    `)
	g.CommandExample(ctx, "./make_official.sh")
	return nil
}
