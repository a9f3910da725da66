package main

import (
	"errors"
	"os"

	"github.com/agentx-labs/skillmaker/internal/cli"
	"github.com/agentx-labs/skillmaker/internal/presenter"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}

	code := 1
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		err = exitErr.Err
	}
	if err != nil {
		presenter.New().Error(err)
	}
	os.Exit(code)
}
