package main

import (
	"os"

	"github.com/algocarelab/superset-config/internal/cli"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	if err := cli.Execute(build); err != nil {
		os.Exit(1)
	}
}
