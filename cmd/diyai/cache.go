package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johndoe6345789/WordNet/internal/lexicon"
)

var (
	cacheOut   string
	cacheLimit int
)

// cacheCmd materializes the WordNet database into the SQLite sense cache
// so later sessions skip the raw file walk.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Build the SQLite sense cache from the WordNet files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cacheOut
		if out == "" {
			out = cfg.CachePath
		}
		if out == "" {
			return fmt.Errorf("no cache path; pass --out or set cache_path in the config")
		}

		dir, err := lexicon.ResolveSearchDir(cfg.WordNetDir)
		if err != nil {
			return err
		}
		wn, err := lexicon.OpenWordNet(dir)
		if err != nil {
			return err
		}
		defer wn.Close()

		store, err := lexicon.OpenCacheStore(out)
		if err != nil {
			return err
		}
		defer store.Close()

		written, err := lexicon.BuildCache(store, wn, cacheLimit)
		if err != nil {
			return err
		}
		rows, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Printf("cached %d lemmas (%d sense rows) into %s\n", written, rows, out)
		return nil
	},
}

func init() {
	cacheCmd.Flags().StringVar(&cacheOut, "out", "", "cache database path")
	cacheCmd.Flags().IntVar(&cacheLimit, "limit", 0, "stop after N lemmas (0 = all)")
}
