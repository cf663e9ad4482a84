package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/johndoe6345789/WordNet/cmd/diyai/config"
	"github.com/johndoe6345789/WordNet/internal/logging"
)

var (
	// Global flags
	configPath string
	wordnetDir string
	phraseFile string
	cachePath  string
	debug      bool
	verbose    bool

	cfg *config.Config
)

// rootCmd launches the interactive chat when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "diyai",
	Short: "diyai - WordNet-backed project assistant",
	Long: `diyai is a turn-based assistant for software project conversations.

It reads free-form requests, infers intent against WordNet senses and a
fixed concept taxonomy, accumulates understanding across the session, and
replies with short, guardrail-validated sentences.

Run without arguments to start the interactive chat.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if wordnetDir != "" {
			cfg.WordNetDir = wordnetDir
		}
		if phraseFile != "" {
			cfg.PhraseFile = phraseFile
		}
		if cachePath != "" {
			cfg.CachePath = cachePath
		}
		if debug {
			cfg.Debug = true
		}
		return logging.Initialize(logging.Options{
			Dir:     cfg.LogDir,
			Debug:   cfg.Debug,
			Verbose: verbose,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	// A local .env can hold DIYAI_* settings during development.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default .diyai/config.json)")
	pf.StringVar(&wordnetDir, "wordnet", "", "WordNet data directory")
	pf.StringVar(&phraseFile, "phrases", "", "phrase override file (json or yaml)")
	pf.StringVar(&cachePath, "cache", "", "SQLite sense cache path")
	pf.BoolVar(&debug, "debug", false, "enable debug file logging")
	pf.BoolVarP(&verbose, "verbose", "v", false, "echo logs to the console")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(meaningCmd)
	rootCmd.AddCommand(cacheCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
