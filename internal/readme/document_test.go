package readme

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	results map[string]CmdResult
	errs    map[string]error
	calls   []string
	dirs    []string
}

func (f *fakeRunner) Run(_ context.Context, command, dir string) (CmdResult, error) {
	f.calls = append(f.calls, command)
	f.dirs = append(f.dirs, dir)
	return f.results[command], f.errs[command]
}

func TestHeading(t *testing.T) {
	g := NewGenerator(t.TempDir())
	g.Heading("X", 2)
	assert.Equal(t, []string{"## X", ""}, g.Lines())
}

func TestHeadingLevels(t *testing.T) {
	g := NewGenerator(t.TempDir())
	g.H1("one")
	g.H4("four")
	g.Heading("zero", 0)
	g.Heading("eight", 8)
	assert.Equal(t, []string{
		"# one", "",
		"#### four", "",
		"# zero", "",
		"######## eight", "",
	}, g.Lines())
}

func TestParagraphDedents(t *testing.T) {
	g := NewGenerator(t.TempDir())
	g.Paragraph(`
    1. Clone the repository

        nested stays indented
    2. Rename things   
    `)
	lines := g.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "\n1. Clone the repository\n\n    nested stays indented\n2. Rename things", lines[0])
	assert.Equal(t, "", lines[1])
}

func TestParagraphStripsOnlySharedPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no common prefix", "  a\n\tb", "  a\n\tb"},
		{"shared tab", "\t\ta\n\tb", "\ta\nb"},
		{"shared mixed prefix", " \t a\n \tb", " a\nb"},
		{"diverging after shared space", "  x\n \ty", " x\n\ty"},
		{"blank line ignored", "    a\n\n  \n    b", "a\n\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(t.TempDir())
			g.Paragraph(tt.in)
			assert.Equal(t, []string{tt.want, ""}, g.Lines())
		})
	}
}

func TestParagraphWithoutIndent(t *testing.T) {
	g := NewGenerator(t.TempDir())
	g.Paragraph("plain text\n\n\n")
	assert.Equal(t, []string{"plain text", ""}, g.Lines())
}

func TestCommandExampleRecordsOutput(t *testing.T) {
	root := t.TempDir()
	runner := &fakeRunner{results: map[string]CmdResult{
		"echo hi": {Output: "  hi\n\n"},
	}}
	g := NewGenerator(root, WithRunner(runner))
	g.CommandExample(context.Background(), "echo hi")

	assert.Equal(t, []string{"```", "$ echo hi", "hi", "```", ""}, g.Lines())
	assert.Equal(t, []string{root}, runner.dirs)
	assert.NoError(t, g.Err())
}

func TestCommandExampleAbsorbsFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]CmdResult{
		"false": {ExitCode: 1},
		"boom":  {Output: "sh: boom: not found\n", ExitCode: 127},
	}}
	g := NewGenerator(t.TempDir(), WithRunner(runner))
	g.CommandExample(context.Background(), "false")
	g.CommandExample(context.Background(), "boom")

	assert.Equal(t, []string{
		"```", "$ false", "", "```", "",
		"```", "$ boom", "sh: boom: not found", "```", "",
	}, g.Lines())
	assert.NoError(t, g.Err())
}

func TestCommandExampleStartFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"x": errors.New("no shell")}}
	g := NewGenerator(t.TempDir(), WithRunner(runner))
	g.CommandExample(context.Background(), "x")

	assert.Equal(t, []string{"```", "$ x", "no shell", "```", ""}, g.Lines())
	assert.NoError(t, g.Err())
}

func TestStrictModeReportsFirstFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]CmdResult{
		"ok":    {Output: "fine"},
		"false": {ExitCode: 1},
		"exit2": {ExitCode: 2},
	}}
	g := NewGenerator(t.TempDir(), WithRunner(runner), WithStrict(true))
	g.CommandExample(context.Background(), "ok")
	require.NoError(t, g.Err())
	g.CommandExample(context.Background(), "false")
	g.CommandExample(context.Background(), "exit2")

	require.Error(t, g.Err())
	assert.Contains(t, g.Err().Error(), `"false"`)
	assert.Len(t, g.Lines(), 15)
}

func TestStringEndsWithSingleNewline(t *testing.T) {
	runner := &fakeRunner{results: map[string]CmdResult{"echo hi": {Output: "hi\n"}}}
	cases := map[string]func(g *Generator){
		"empty":     func(g *Generator) {},
		"heading":   func(g *Generator) { g.H1("title") },
		"paragraph": func(g *Generator) { g.Paragraph("text\n\n") },
		"command":   func(g *Generator) { g.CommandExample(context.Background(), "echo hi") },
		"mixed": func(g *Generator) {
			g.H2("a")
			g.Paragraph("b")
			g.CommandExample(context.Background(), "echo hi")
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGenerator(t.TempDir(), WithRunner(runner))
			build(g)
			out := g.String()
			assert.True(t, strings.HasSuffix(out, "\n"), "missing trailing newline: %q", out)
			assert.False(t, strings.HasSuffix(out, "\n\n"), "more than one trailing newline: %q", out)
		})
	}
}

func TestWriteTo(t *testing.T) {
	g := NewGenerator(t.TempDir())
	g.Heading("X", 2)
	g.Paragraph("body")

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "## X\n\nbody\n", buf.String())
	assert.Equal(t, buf.String(), g.String())
}

func TestShellRunnerIntegration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell commands")
	}
	root := t.TempDir()
	g := NewGenerator(root)
	g.CommandExample(context.Background(), "echo hi")
	g.CommandExample(context.Background(), "false")
	g.CommandExample(context.Background(), "echo out; echo err 1>&2")
	g.CommandExample(context.Background(), "pwd")

	lines := g.Lines()
	assert.Equal(t, []string{"```", "$ echo hi", "hi", "```", ""}, lines[0:5])
	assert.Equal(t, []string{"```", "$ false", "", "```", ""}, lines[5:10])
	assert.Equal(t, "out\nerr", lines[12])
	assert.True(t, strings.HasSuffix(lines[17], root), "pwd %q does not end in %q", lines[17], root)
}
