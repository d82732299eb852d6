package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sriramreddydwarampudi/sridaw/config"
)

var (
	cfgFile  string
	logLevel string

	// conf is filled in once before any subcommand runs and handed to the
	// command implementations explicitly.
	conf = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "sridaw",
	Short: "Score to MIDI tools",
	Long:  `Builds scores from documents and renders them as Standard MIDI Files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		lvl, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		conf = c
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
