package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Yashcodes04/codementor-project/internal/config"
	"github.com/Yashcodes04/codementor-project/internal/storage"
	"github.com/Yashcodes04/codementor-project/internal/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "codementor-agent",
	Short: "CodeMentor coding assistant agent",
	Long: `The CodeMentor agent watches problem-hosting pages in a headless
browser, detects coding problems and offers staged hints.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd, detectCmd, loginCmd, logoutCmd, statusCmd, trackCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newWorker wires storage, session and backend client from the environment
func newWorker(ctx context.Context) (*worker.Worker, storage.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	var store storage.Store
	if cfg.RedisAddr != "" {
		redisStore, err := storage.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, config.Config{}, err
		}
		store = redisStore
	} else {
		log.Warn("REDIS_ADDR not set, session state will not survive restarts")
		store = storage.NewMemoryStore()
	}

	session := worker.NewSession(store)
	backend := worker.NewBackendClient(cfg.BackendURL, config.Version)

	w := worker.New(session, backend)
	if err := w.Install(ctx); err != nil {
		return nil, nil, config.Config{}, err
	}
	return w, store, cfg, nil
}
