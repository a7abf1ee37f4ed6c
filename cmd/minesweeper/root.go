package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/terminal"
)

const defaultConfigPath = "/run/minesweeper/config.json"

type rootOptions struct {
	configPath string
	config     *config.Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Classic 10x10 minesweeper",
		Long: `minesweeper plays the classic 10x10 board with 20 mines, either in the
browser (serve) or in the terminal (play).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = c

			log, err := logging.New(c)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "config file path")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newPlayCmd(opts))

	return rootCmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game to a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.config.Addr = addr
			}

			ctx, stop := signal.NotifyContext(
				context.Background(),
				os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			opts.log.Info("starting up, mode = ", opts.config.Mode)
			opts.log.WithFields(opts.config.Fields()).Debug("config")

			a, err := app.New(opts.config, opts.log)
			if err != nil {
				return err
			}
			if err := a.Start(ctx); err != nil {
				opts.log.WithError(err).Error("exit")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			rnd := session.NewRand()
			if cmd.Flags().Changed("seed") {
				rnd = rand.New(rand.NewPCG(seed, seed))
			}

			// the board owns the terminal, keep log lines out of it
			opts.log.SetLevel(logrus.WarnLevel)

			sess := session.NewClassic("terminal", rnd, opts.log)
			return terminal.Play(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible board")

	return cmd
}
