package main

import (
	"os"

	"github.com/yossyi0323/App/internal/cli"
	"github.com/yossyi0323/App/internal/utils"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		utils.Logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
