package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-ewah/ewah"
	"github.com/go-ewah/ewah/cmd/ewahctl/internal/config"
)

var (
	cfgPath string
	cfg     *config.Config
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ewahctl",
		Short: "Build, combine, and inspect EWAH-compressed bitmaps",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level, err := logrus.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			ewah.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to ewahctl's TOML config file")

	root.AddCommand(buildCmd())
	root.AddCommand(cardCmd())
	root.AddCommand(combineCmd("and", ewah.And))
	root.AddCommand(combineCmd("or", ewah.Or))
	root.AddCommand(combineCmd("xor", ewah.Xor))
	root.AddCommand(combineCmd("andnot", ewah.AndNot))
	root.AddCommand(intersectsCmd())
	root.AddCommand(dumpCmd())

	return root
}
