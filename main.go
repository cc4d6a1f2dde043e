package main

import (
	"fmt"
	"os"
)

const (
	appName    = "go-cli-template"
	projectURL = "github.com/AstromechZA/go-cli-template"
)

const logoImage = `
  ____  ___         ___ _ _       _                       _       _
 / ___|/ _ \  ___  / __| (_)  ___| |_ ___ _ __ ___  _ __ | | __ _| |_ ___
| |  _| | | ||___|| |  | | | |___| __/ _ \ '_ ' _ \| '_ \| |/ _' | __/ _ \
| |_| | |_| |     | |__| | |     | ||  __/ | | | | | |_) | | (_| | ||  __/
 \____|\___/       \___|_|_|      \__\___|_| |_| |_| .__/|_|\__,_|\__\___|
                                                  |_|
`

// Set at build time by make_official.sh through -ldflags -X.
var (
	Version    = "<unofficial build>"
	GitSummary = "<changes unknown>"
	BuildDate  = "<no date>"
)

func versionText() string {
	return fmt.Sprintf("Version: %s (%s) on %s \n%s\nProject: %s\n", Version, GitSummary, BuildDate, logoImage, projectURL)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, appName+":", err)
		os.Exit(1)
	}
}
