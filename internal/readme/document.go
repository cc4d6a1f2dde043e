// Package readme builds Markdown documents whose command examples carry the
// real output of the commands they show.
package readme

import (
	"bytes"
	"context"
	"io"
	"strings"
	"unicode"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Generator accumulates the lines of a Markdown document. Lines are only ever
// appended; String serializes them once generation is finished.
type Generator struct {
	root   string
	runner Runner
	log    logr.Logger
	strict bool
	err    error
	lines  []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRunner replaces the shell runner used by CommandExample.
func WithRunner(r Runner) Option {
	return func(g *Generator) { g.runner = r }
}

// WithLogger sets the logger used to report executed commands.
func WithLogger(log logr.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithStrict makes non-zero command exits visible through Err. The output is
// still recorded in the document.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// NewGenerator returns an empty document whose commands run in root.
func NewGenerator(root string, opts ...Option) *Generator {
	g := &Generator{
		root:   root,
		runner: NewShellRunner(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Heading appends a heading of the given level followed by a blank line.
// Levels below one are written as level one; there is no upper bound.
func (g *Generator) Heading(text string, level int) {
	if level < 1 {
		level = 1
	}
	g.lines = append(g.lines, strings.Repeat("#", level)+" "+text, "")
}

func (g *Generator) H1(text string) { g.Heading(text, 1) }
func (g *Generator) H2(text string) { g.Heading(text, 2) }
func (g *Generator) H3(text string) { g.Heading(text, 3) }
func (g *Generator) H4(text string) { g.Heading(text, 4) }

// Paragraph appends text with trailing whitespace removed and the indentation
// common to all of its lines stripped, followed by a blank line.
func (g *Generator) Paragraph(text string) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	g.lines = append(g.lines, dedent(text), "")
}

// CommandExample runs command through the shell in the project root and
// appends a fenced block holding the command line and its trimmed combined
// output. Commands that exit non-zero are recorded the same way as successful
// ones.
func (g *Generator) CommandExample(ctx context.Context, command string) {
	g.lines = append(g.lines, "```", "$ "+command)

	g.log.V(1).Info("running command example", "command", command, "dir", g.root)
	res, err := g.runner.Run(ctx, command, g.root)
	output := res.Output
	if err != nil {
		g.log.Error(err, "command could not be started", "command", command)
		if strings.TrimSpace(output) == "" {
			output = err.Error()
		}
		g.fail(errors.Wrapf(err, "command %q", command))
	} else if res.ExitCode != 0 {
		g.log.Info("command exited non-zero", "command", command, "exitCode", res.ExitCode)
		if g.strict {
			g.fail(errors.Errorf("command %q exited with status %d", command, res.ExitCode))
		}
	}

	g.lines = append(g.lines, strings.TrimSpace(output), "```", "")
}

func (g *Generator) fail(err error) {
	if g.strict && g.err == nil {
		g.err = err
	}
}

// Err reports the first command failure seen in strict mode. It is always nil
// when strict mode is off.
func (g *Generator) Err() error {
	return g.err
}

// Lines returns a copy of the accumulated lines.
func (g *Generator) Lines() []string {
	return append([]string(nil), g.lines...)
}

// String joins the lines with newlines and guarantees exactly one trailing
// newline.
func (g *Generator) String() string {
	text := strings.Join(g.lines, "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// Bytes is String as a byte slice.
func (g *Generator) Bytes() []byte {
	return []byte(g.String())
}

// WriteTo writes the serialized document to w.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, bytes.NewReader(g.Bytes()))
	return n, err
}

// dedent removes the longest whitespace prefix shared by every non-blank
// line. Whitespace-only lines become empty and do not affect the prefix.
func dedent(src string) string {
	lines := strings.Split(src, "\n")
	var margin string
	first := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		indent := leadingWhitespace(line)
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
