// Package app holds the command line surface shared by the terminal and the
// window frontends.
package app

import (
	"io"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/sweeper/field"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/session"
)

const Usage = "[rows] [cols] [bombs%]"

type Options struct {
	Seed     int64
	Board    string
	LogFile  string
	LogLevel string
}

func (o *Options) Bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int64Var(&o.Seed, "seed", 0, "random seed for bomb placement, 0 picks one from the clock")
	flags.StringVar(&o.Board, "board", "", "play a fixed layout file ('*' bomb, '.' safe) instead of a random board, the first open is not guaranteed safe")
	flags.StringVar(&o.LogFile, "log-file", "", "append logs to this file, logs are dropped when empty")
	flags.StringVar(&o.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// SetupLogging points logrus at the log file. The terminal belongs to the
// game, so without a file nothing is logged.
func (o *Options) SetupLogging() (io.Closer, error) {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	if o.LogFile == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	file, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (o *Options) Rand() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

// NewSession builds the session from the positional args, or from the board
// file when one is given.
func (o *Options) NewSession(args []string) (*session.Session, error) {
	cfg, err := session.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if o.Board != "" {
		f, err := field.Load(o.Board, model.Position{}, o.Rand())
		if err != nil {
			return nil, err
		}
		log.Infof("board %s %dx%d", o.Board, f.Size().Rows, f.Size().Cols)
		return session.FromField(f), nil
	}
	log.Infof("config %dx%d bombs:%d%%", cfg.Rows, cfg.Cols, cfg.BombsPercentage)
	return session.New(cfg, o.Rand())
}
