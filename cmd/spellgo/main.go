package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"spellgo/internal/api"
	"spellgo/pkg/audio"
	"spellgo/pkg/config"
	"spellgo/pkg/db"
	"spellgo/pkg/dictionary"
	"spellgo/pkg/game"
	"spellgo/pkg/logging"
	"spellgo/pkg/request"
	"spellgo/pkg/speech"
	"spellgo/pkg/store"
	"spellgo/pkg/tracker"
	"spellgo/pkg/tts"
	"spellgo/pkg/tts/edgetts"
	"spellgo/pkg/tts/sapi"
	"spellgo/pkg/version"
)

var initConfig = flag.Bool("init-config", false, "Generate default config file and exit")

func main() {
	flag.Parse()

	// Handle --init-config flag
	if *initConfig {
		if err := config.GenerateDefault("configs/spellgo.yaml"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated: configs/spellgo.yaml")
		return
	}

	if err := run(context.Background(), "configs/spellgo.yaml"); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Edge TTS credentials come from the environment, a local .env is optional.
	_ = godotenv.Load()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	tts.SetLogPath(appCfg.TTS.LogPath)

	slog.Info("SpellGo Started", "version", version.Version)

	dbConn, st, err := initDB(appCfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := dbConn.PruneCache(time.Duration(appCfg.Dictionary.CacheTTL)); err != nil {
		slog.Warn("Cache pruning failed", "error", err)
	}

	tr := tracker.New()
	reqClient := request.New(st, tr, request.ClientConfig{
		Retries:   appCfg.Request.Retries,
		Timeout:   time.Duration(appCfg.Request.Timeout),
		BaseDelay: time.Duration(appCfg.Request.Backoff.BaseDelay),
		MaxDelay:  time.Duration(appCfg.Request.Backoff.MaxDelay),
	})

	dict := dictionary.NewManager(appCfg.Dictionary, reqClient)
	if err := dict.Load(ctx); err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	ttsProv, voiceID, err := newTTSProvider(appCfg, tr)
	if err != nil {
		return err
	}

	player := audio.New()
	restoreVolume(ctx, st, player)

	queue := speech.NewQueue(speech.NewSynthEngine(ttsProv, player, voiceID), tr)
	defer queue.Shutdown()

	defaults := game.Settings{
		Questions:     appCfg.Game.Questions,
		MinWordLength: appCfg.Game.MinWordLength,
		MaxWordLength: appCfg.Game.MaxWordLength,
		Source:        appCfg.Dictionary.Source,
		VoiceID:       voiceID,
	}
	settings := api.RestoreSettings(ctx, st, defaults)
	if settings.Source != dict.Source() {
		if err := dict.Reload(ctx, settings.Source); err != nil {
			slog.Warn("Failed to restore dictionary source, keeping default", "error", err)
			settings.Source = dict.Source()
		}
	}

	games := game.NewManager(&dictSource{dict: dict}, st, queue, settings, appCfg.Game.LogPath)

	return runServer(ctx, appCfg, games, st, tr, queue, player)
}

func initDB(appCfg *config.Config) (*db.DB, store.Store, error) {
	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return dbConn, store.NewSQLiteStore(dbConn), nil
}

// newTTSProvider builds the synthesis provider selected in the config.
func newTTSProvider(cfg *config.Config, tr *tracker.Tracker) (tts.Provider, string, error) {
	switch cfg.TTS.Engine {
	case "edge-tts":
		return edgetts.NewProvider(tr), cfg.TTS.EdgeTTS.VoiceID, nil
	case "windows-sapi":
		return sapi.NewProvider(), cfg.TTS.SAPI.VoiceID, nil
	default:
		return nil, "", fmt.Errorf("unknown tts engine %q: must be 'edge-tts' or 'windows-sapi'", cfg.TTS.Engine)
	}
}

func restoreVolume(ctx context.Context, st store.StateStore, player audio.Player) {
	volStr, ok := st.GetState(ctx, "volume")
	if !ok || volStr == "" {
		return
	}
	var val float64
	if _, err := fmt.Sscanf(volStr, "%f", &val); err == nil {
		player.SetVolume(val)
	}
}

// dictSource adapts the dictionary manager to the game's word source.
type dictSource struct {
	dict *dictionary.Manager
}

func (d *dictSource) WordsByLength(minLen, maxLen int) map[string]string {
	return d.dict.WordsByLength(minLen, maxLen)
}

func (d *dictSource) Reload(source string) error {
	return d.dict.Reload(context.Background(), source)
}

func (d *dictSource) Source() string {
	return d.dict.Source()
}

func runServer(ctx context.Context, cfg *config.Config, games *game.Manager, st store.Store, tr *tracker.Tracker, queue *speech.Queue, player audio.Player) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(cfg.Server.Address,
		api.NewGameHandler(games),
		api.NewSettingsHandler(games, st),
		api.NewHistoryHandler(st),
		api.NewStatsHandler(tr, queue),
		api.NewAudioHandler(player, st),
		shutdownFunc,
	)

	srv.Handler = loggingMiddleware(srv.Handler)
	return runServerLifecycle(ctx, srv, quit)
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.RequestLogger.Info("Request Processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
