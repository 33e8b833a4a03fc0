// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/atomlath/config"
	"github.com/katalvlaran/atomlath/logger"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:   "atomlath",
		Short: "Atomic structure analysis",
		Long: `atomlath analyses periodic atomic structures.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (ATOMLATH_* prefix)
3. The TOML file given with --config
4. Default values

Examples:
  atomlath generate fcc --reps 4,4,4 -o fcc.yaml
  atomlath analyze -i fcc.yaml
  atomlath config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(a.v, a.cfgPath); err != nil {
				return err
			}
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "TOML configuration file")
	pf.Bool("json-log", false, "emit JSON logs")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log.json", pf.Lookup("json-log"))
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(
		newAnalyzeCmd(a),
		newGenerateCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}
