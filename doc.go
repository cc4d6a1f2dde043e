// This program is the example application that ships with the template. It
// greets the people named on its command line and exists mostly to show how a
// small CLI is laid out, versioned and released.
//
// Key capabilities:
//
//   - greet one or more names, with a custom greeting (-greeting) or in upper
//     case (-shout).
//   - print the version, git summary and build date baked in by
//     make_official.sh (-version).
//   - accept single-dash long flags (-help, -version) as well as the
//     double-dash forms.
//   - generate shell completion scripts and Markdown reference docs for
//     itself (completion, gen-docs).
//
// # Scaffolding tools
//
// Two helper programs live under cmd/:
//
//   - cmd/readme regenerates README.md, running every documented command and
//     embedding its real output.
//   - cmd/rename rewrites the template's import path in a new clone and then
//     deletes itself.
package main
