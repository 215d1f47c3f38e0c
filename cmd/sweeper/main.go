package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/sweeper/app"
)

type Sweeper struct {
	command  *cobra.Command
	Options  app.Options
	ExitCode int
}

func main() {
	sweeper := Sweeper{}
	sweeper.commands()
	if err := sweeper.command.Execute(); err != nil {
		log.Errorf("sweeper: %v", err)
		os.Exit(2)
	}
	os.Exit(sweeper.ExitCode)
}
