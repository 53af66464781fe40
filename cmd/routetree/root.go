package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/routetree/pkg/routetree"
	"github.com/BrandonKowalski/routetree/pkg/routetree/constants"
	"github.com/BrandonKowalski/routetree/pkg/routetree/labels"
)

const (
	flagLogLevel = "log-level"
	flagLogPath  = "log-path"
	flagDebug    = "debug"
	flagLang     = "lang"
	flagLabels   = "labels"
)

// config holds settings shared by every command. Flags win over
// ROUTETREE_* environment variables.
type config struct {
	v *viper.Viper
}

func newConfig() *config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(flagLang, constants.DefaultLanguage)
	return &config{v: v}
}

// labeler builds a Labeler for the configured language and message files.
func (c *config) labeler() (*labels.Labeler, error) {
	l := labels.NewDefault()
	for _, path := range c.v.GetStringSlice(flagLabels) {
		if err := l.LoadFile(path); err != nil {
			return nil, err
		}
	}
	l.SetLanguage(c.v.GetString(flagLang))
	return l, nil
}

func newRootCmd() *cobra.Command {
	cfg := newConfig()

	cmd := &cobra.Command{
		Use:           "routetree",
		Short:         "Inspect and exercise route declaration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			routetree.Init(routetree.Options{
				LogPath:  cfg.v.GetString(flagLogPath),
				LogLevel: cfg.v.GetString(flagLogLevel),
				Debug:    cfg.v.GetBool(flagDebug),
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagLogLevel, "", "application log level (debug|info|warn|error)")
	flags.String(flagLogPath, "", "also write logs to this file")
	flags.Bool(flagDebug, false, "log library internals at debug level")
	flags.String(flagLang, constants.DefaultLanguage, "language for route titles")
	flags.StringSlice(flagLabels, nil, "title message files, e.g. titles.de.toml")
	for _, name := range []string{flagLogLevel, flagLogPath, flagDebug, flagLang, flagLabels} {
		_ = cfg.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(
		newCheckCmd(cfg),
		newPathsCmd(cfg),
		newReplayCmd(cfg),
		newWatchCmd(cfg),
	)
	return cmd
}
