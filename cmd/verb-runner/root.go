package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/verb-runner/config"
)

var (
	cfgFile string
	v       = config.NewViper()
)

// rootCmd runs the game; there are no subcommands
var rootCmd = &cobra.Command{
	Use:          "verb-runner",
	Short:        "Outrun the pursuer by conjugating Spanish verbs",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

// Execute is called by main.main
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.verb-runner.yaml)")
	flags.Bool(config.KeyDebug, false, "write a debug log file")
	flags.String(config.KeyLogDir, "logs", "directory for the log file")
	flags.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(config.KeyLogFormat, "console", "log format (console, json)")
	flags.Bool(config.KeyAudio, true, "play sound cues")
	flags.Float64(config.KeyVolume, 0.6, "sound volume in [0,1]")
	flags.Float64(config.KeyCellUnits, 10, "track distance per terminal column")
	flags.Int(config.KeyFPS, 60, "frames per second")
	flags.Float64(config.KeyMaxFrameDelta, 0.25, "longest simulated step in seconds, 0 disables the cap")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".verb-runner")
	}

	// stdout belongs to the terminal UI once the game starts
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	bindFlags(rootCmd, v)
}

// bindFlags ties each flag to viper, giving flag > env > file > default
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		// Environment variables can't have dashes, --log-dir maps to VR_LOG_DIR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", config.EnvPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not bind flag %s: %v\n", f.Name, err)
		}
	})
}
