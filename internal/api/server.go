package api

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"spellgo/internal/ui"
	"spellgo/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts handlers for all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(addr string, gameH *GameHandler, settingsH *SettingsHandler, historyH *HistoryHandler, stats *StatsHandler, audioH *AudioHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 3. Game Endpoints
	mux.HandleFunc("POST /api/game/start", gameH.HandleStart)
	mux.HandleFunc("GET /api/game/state", gameH.HandleState)
	mux.HandleFunc("POST /api/game/answer", gameH.HandleAnswer)
	mux.HandleFunc("POST /api/game/skip", gameH.HandleSkip)
	mux.HandleFunc("POST /api/game/replay", gameH.HandleReplay)
	mux.HandleFunc("POST /api/game/definition", gameH.HandleDefinition)
	mux.HandleFunc("GET /api/game/results", gameH.HandleResults)

	// 4. Settings Endpoint
	mux.HandleFunc("/api/settings", settingsH.HandleSettings)

	// 5. History Endpoint
	mux.HandleFunc("GET /api/history", historyH.HandleList)

	// 6. Stats Endpoint
	mux.Handle("GET /api/stats", stats)

	// 7. Logs Endpoint
	mux.HandleFunc("GET /api/log/latest", handleLatestLog)

	// 8. Audio Endpoints
	if audioH != nil {
		mux.HandleFunc("GET /api/volume", audioH.HandleGetVolume)
		mux.HandleFunc("POST /api/volume", audioH.HandleSetVolume)
	}

	// 9. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	// 10. Static Frontend Serving (SPA)
	distFS, err := fs.Sub(ui.DistFS, "dist")
	if err != nil {
		panic(fmt.Sprintf("Failed to subtree dist from embedded assets: %v", err))
	}

	spaFS := &spaFileSystem{root: http.FS(distFS)}
	mux.Handle("/", http.FileServer(spaFS))

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
