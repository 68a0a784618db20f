package api

import (
	"net/http"

	"spellgo/pkg/speech"
	"spellgo/pkg/tracker"
)

// StatsHandler reports provider counters and the speech queue state.
type StatsHandler struct {
	tracker *tracker.Tracker
	queue   *speech.Queue
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(t *tracker.Tracker, q *speech.Queue) *StatsHandler {
	return &StatsHandler{tracker: t, queue: q}
}

// ProviderStatsDTO is the per-provider stats payload.
type ProviderStatsDTO struct {
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	APISuccess  int64 `json:"api_success"`
	APIFailures int64 `json:"api_errors"`
	HitRate     int64 `json:"hit_rate"`
	Spoken      int64 `json:"spoken"`
	Degraded    int64 `json:"degraded"`
}

// SpeechStats describes the speech queue.
type SpeechStats struct {
	State   string `json:"state"`
	Pending int    `json:"pending"`
}

// StatsResponse is the /api/stats payload.
type StatsResponse struct {
	Speech    SpeechStats                 `json:"speech"`
	Providers map[string]ProviderStatsDTO `json:"providers"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot()

	resp := StatsResponse{
		Speech: SpeechStats{
			State:   h.queue.State().String(),
			Pending: h.queue.Pending(),
		},
		Providers: make(map[string]ProviderStatsDTO),
	}

	for provider, stats := range snapshot {
		totalCache := stats.CacheHits + stats.CacheMisses
		hitRate := int64(0)
		if totalCache > 0 {
			hitRate = (stats.CacheHits * 100) / totalCache
		}
		resp.Providers[provider] = ProviderStatsDTO{
			CacheHits:   stats.CacheHits,
			CacheMisses: stats.CacheMisses,
			APISuccess:  stats.APISuccess,
			APIFailures: stats.APIFailures,
			HitRate:     hitRate,
			Spoken:      stats.Spoken,
			Degraded:    stats.Degraded,
		}
	}

	writeJSON(w, resp)
}
