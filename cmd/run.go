package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vocabdrill/vocabdrill/internal/app"
	"github.com/vocabdrill/vocabdrill/internal/audio"
	"github.com/vocabdrill/vocabdrill/internal/config"
	"github.com/vocabdrill/vocabdrill/internal/logging"
	"github.com/vocabdrill/vocabdrill/internal/quiz"
	"github.com/vocabdrill/vocabdrill/internal/store"
	"github.com/vocabdrill/vocabdrill/internal/telemetry"
)

// runApp loads config, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Log)
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	registry, err := buildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	reporter := telemetry.New(telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		IPLookupURL: cfg.Telemetry.IPLookupURL,
		UserAgent:   "vocabdrill/" + version,
		Referrer:    cfg.Telemetry.Referrer,
	}, log)
	defer reporter.Wait()

	events := quiz.MultiSink{
		reporter,
		store.NewEventSink(st.EventRepo(), log),
	}

	cues := audio.NewCues(audio.NewBeepPlayer(), cfg.Audio.Enabled, log)

	log.Info("starting",
		zap.String("version", version),
		zap.String("db", dbPath),
		zap.Strings("lists", registry.Names()))

	return app.Run(app.Options{
		Registry: registry,
		Events:   events,
		Cues:     cues,
		Log:      log,
	})
}
