package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/sweeper/app"
)

type Window struct {
	command  *cobra.Command
	Options  app.Options
	ExitCode int
}

func main() {
	w := Window{}
	w.command = &cobra.Command{
		Use:   "sweeper-gui " + app.Usage,
		Short: "Minesweeper in a window",
		Long: "Minesweeper in a window.\n\n" +
			"Left click opens, right click flags. Keys: hjkl/arrows move, space open, f flag, r restart, q quit.",
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE:         w.run,
	}
	w.Options.Bind(w.command)
	if err := w.command.Execute(); err != nil {
		log.Errorf("sweeper-gui: %v", err)
		os.Exit(2)
	}
	os.Exit(w.ExitCode)
}

func (w *Window) run(cmd *cobra.Command, args []string) error {
	closer, err := w.Options.SetupLogging()
	if err != nil {
		return err
	}
	defer closer.Close()

	sess, err := w.Options.NewSession(args)
	if err != nil {
		return err
	}
	game, err := NewGame(sess)
	if err != nil {
		return err
	}

	width, height := game.ScreenSize()
	if err := ebiten.Run(game.update, width, height, 1, "sweeper"); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	log.Infof("sweeper-gui finished %s after %d moves", sess.State.Name(), sess.Moves)
	w.ExitCode = sess.ExitCode()
	return nil
}
