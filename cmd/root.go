package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/outrider/pkg/config"
	"github.com/golangdaddy/outrider/pkg/game"
	"github.com/golangdaddy/outrider/pkg/log"
	"github.com/golangdaddy/outrider/pkg/track"
)

const envPrefix = "OUTRIDER"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "outrider",
	Short: "Pseudo-3D motorbike racing with working rear-view mirrors",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if config.Debug {
			log.InitDevelopmentLogger()
		} else {
			log.InitProductionLogger()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		return play()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.outrider.yml)")

	rootCmd.PersistentFlags().IntVar(&config.Sections, "sections",
		track.DefaultSections,
		"number of procedural sections in the track")
	rootCmd.PersistentFlags().Int64Var(&config.Seed, "seed", 0,
		"track seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&config.DrawDistance, "draw-distance", 300,
		"segments drawn ahead of the rider")
	rootCmd.PersistentFlags().IntVar(&config.MirrorDistance, "mirror-distance", 100,
		"segments drawn behind the rider in each mirror")
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false,
		"development logging and on-screen counters")

	rootCmd.Flags().IntVar(&config.ScreenWidth, "width", 1024, "screen width")
	rootCmd.Flags().IntVar(&config.ScreenHeight, "height", 768, "screen height")

	// add commands here
	rootCmd.AddCommand(NewSimulateCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".outrider" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".outrider")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --draw-distance to OUTRIDER_DRAW_DISTANCE
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

// resolveSeed returns the configured seed, or one from the clock
func resolveSeed() int64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return time.Now().UnixNano()
}

func play() error {
	seed := resolveSeed()
	log.Info("starting", log.Int64("seed", seed),
		log.Int("width", config.ScreenWidth), log.Int("height", config.ScreenHeight))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Outrider")
	if err := ebiten.RunGame(game.NewGame(seed)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
