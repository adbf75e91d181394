package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Garsondee/deploy-menu/internal/config"
	"github.com/Garsondee/deploy-menu/internal/game"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:   "deploy-menu",
		Short: "Pick the units a region sends into battle",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			return config.ReadFile(v, cfgFile)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log := logrus.New()
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return errors.Wrap(err, "parsing log level")
			}
			log.SetLevel(level)

			g := game.New(cfg, log)
			ebiten.SetWindowTitle("Deployment")
			ebiten.SetWindowSize(g.WindowSize())
			if err := ebiten.RunGame(g); err != nil {
				return errors.Wrap(err, "running game")
			}
			fmt.Print(g.Session().Summary())
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	cmd.Flags().Int("width", 1280, "menu width in pixels")
	cmd.Flags().Int("height", 720, "menu height in pixels")
	cmd.Flags().Int("last-option", 12, "linear index of the initially selected cell")
	cmd.Flags().String("log-level", "info", "logrus level")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
