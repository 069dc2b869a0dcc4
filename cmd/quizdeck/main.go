package main

import (
	"os"

	"github.com/quizdeck/quizdeck-cli/internal/app"
	"github.com/quizdeck/quizdeck-cli/internal/config"
	"github.com/quizdeck/quizdeck-cli/internal/view"
)

func main() {
	config.ParseArguments()
	config.SetupLogger()

	a := app.NewApp()
	defer a.Stop()

	code := view.Run(a)
	os.Exit(code)
}
