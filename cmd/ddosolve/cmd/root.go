package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "ddosolve",
	Short: "Solve MAX-2-SAT instances by decision-diagram compilation",
	Long: `ddosolve reads a DIMACS weighted-CNF (.wcnf) instance and solves it with
a branch-and-bound loop around repeated decision-diagram compilation:
Relaxed compiles yield dual bounds and a cutset of subproblems to expand,
Restricted compiles yield primal bounds, until the gap closes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	},
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ddosolve.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig wires viper to an optional config file plus DDOSOLVE_*
// environment variables, so flags like --width can also be set via
// ddosolve.yaml or DDOSOLVE_WIDTH without touching cobra's flag parsing.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ddosolve")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DDOSOLVE")
	viper.AutomaticEnv()

	// A missing config file is fine; explicit flags and env vars still work.
	_ = viper.ReadInConfig()
}
