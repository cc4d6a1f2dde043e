// Package example is a fixture for package comment embedding.
//
// Features:
//   - **Alpha**: list items survive rendering.
//   - **Beta**: so does a second one.
//
// # Usage
//
// Run it with no arguments.
package example

// Answer documents an exported constant.
const Answer = 42

// Greeter produces greeting messages.
type Greeter struct {
	Name string
}

// Greet returns a friendly message.
func (g *Greeter) Greet() string {
	return "hello " + g.Name
}
