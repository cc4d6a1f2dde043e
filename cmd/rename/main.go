// Command rename rebrands a freshly cloned template: it rewrites the template's
// import path and project name in a fixed set of files, then deletes its own
// source file. It is meant to be run exactly once.
//
//	go run ./cmd/rename github.com/<user>/<repo>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AstromechZA/go-cli-template/internal/config"
	"github.com/AstromechZA/go-cli-template/internal/logging"
	"github.com/AstromechZA/go-cli-template/internal/project"
	"github.com/AstromechZA/go-cli-template/internal/rename"
	"github.com/spf13/cobra"
)

type environment struct {
	root   string
	self   string
	stdout io.Writer
	stderr io.Writer
}

func main() {
	self := project.SourceFile(0)
	root, err := project.ToolRoot(self)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rename:", err)
		os.Exit(1)
	}
	env := environment{root: root, self: self, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintln(os.Stderr, "rename:", err)
		os.Exit(1)
	}
}

func run(argv []string, env environment) error {
	cmd := &cobra.Command{
		Use:           "rename IMPORTPATH",
		Short:         "Rewrite the template's import path and project name, then delete this tool",
		Example:       "  go run ./cmd/rename github.com/<user>/<repo>",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return renameProject(args[0], env)
		},
	}
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func renameProject(importPath string, env environment) error {
	log, err := logging.New("rename", logging.TextFormat, 0, env.stdout)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromRoot(env.root)
	if err != nil {
		return err
	}

	oldImportPath := cfg.Rename.OldImportPath
	if oldImportPath == "" {
		if oldImportPath, err = project.ModulePath(env.root); err != nil {
			log.Info("falling back to the template import path", "reason", err.Error())
			oldImportPath = rename.DefaultOldImportPath
		}
	}

	var finalize func() error
	if env.self != "" {
		finalize = rename.SelfDelete(env.self)
	}
	r := rename.New(rename.Config{
		Root:          env.root,
		OldImportPath: oldImportPath,
		Targets:       cfg.Rename.Targets,
	}, log, finalize)
	_, err = r.Rename(importPath)
	return err
}
