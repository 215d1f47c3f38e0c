package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/sweeper/app"
	"github.com/zucenko/sweeper/session"
	"github.com/zucenko/sweeper/terminal"
)

func (s *Sweeper) commands() {
	s.command = &cobra.Command{
		Use:   "sweeper " + app.Usage,
		Short: "Minesweeper in the terminal",
		Long: "Minesweeper in the terminal.\n\n" +
			"Keys: hjkl/wasd/arrows move, space/enter open, f flag, r restart, q quit.\n" +
			"Defaults: 10 rows, 10 cols, 20% bombs (at most 50%).",
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE:         s.run,
	}
	s.Options.Bind(s.command)
}

func (s *Sweeper) run(cmd *cobra.Command, args []string) error {
	closer, err := s.Options.SetupLogging()
	if err != nil {
		return err
	}
	defer closer.Close()

	sess, err := s.Options.NewSession(args)
	if err != nil {
		return err
	}

	tty, err := terminal.OpenTTY()
	if err != nil {
		return err
	}
	defer tty.Close()
	if err := tty.MakeRaw(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := terminal.Run(ctx, sess, tty, cmd.OutOrStdout())
	tty.Restore()
	if err != nil {
		return err
	}
	log.Infof("sweeper finished %s after %d moves", state.Name(), sess.Moves)
	switch state {
	case session.WON:
		fmt.Fprintln(cmd.OutOrStdout(), "All safe cells open. You won!")
	case session.LOST:
		fmt.Fprintln(cmd.OutOrStdout(), "You stepped on a bomb.")
	}
	s.ExitCode = sess.ExitCode()
	return nil
}
