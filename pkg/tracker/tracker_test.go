package tracker

import (
	"sync"
	"testing"
)

func TestTrackerCounters(t *testing.T) {
	tr := New()

	tr.TrackCacheHit("wordset")
	tr.TrackCacheMiss("wordset")
	tr.TrackAPISuccess("edge-tts")
	tr.TrackAPIFailure("edge-tts")
	tr.TrackSpoken("edge-tts")
	tr.TrackDegraded("edge-tts")

	snap := tr.Snapshot()

	ws := snap["wordset"]
	if ws.CacheHits != 1 || ws.CacheMisses != 1 {
		t.Errorf("unexpected wordset stats: %+v", ws)
	}

	et := snap["edge-tts"]
	if et.APISuccess != 1 || et.APIFailures != 1 || et.Spoken != 1 || et.Degraded != 1 {
		t.Errorf("unexpected edge-tts stats: %+v", et)
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.TrackSpoken("edge-tts")
		}()
	}
	wg.Wait()

	if got := tr.Snapshot()["edge-tts"].Spoken; got != 50 {
		t.Errorf("expected 50 spoken, got %d", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := New()
	tr.TrackSpoken("sapi")

	snap := tr.Snapshot()
	snap["sapi"] = ProviderStats{Spoken: 99}

	if tr.Snapshot()["sapi"].Spoken != 1 {
		t.Error("mutating snapshot must not affect tracker state")
	}
}
