package handlers

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetHealth(t *testing.T) {
	t.Run("reports partial artifact presence", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifact(t, dir, "forecasts.json", `{"B12":{}}`)
		writeArtifact(t, dir, "snapshot.json", `{"snapshot_as_of":"2025-06-01T04:00:00Z"}`)
		router := newTestRouter(dir)

		w := doGET(router, "/health")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var got struct {
			OK        bool                `json:"ok"`
			Snapshot  map[string]any      `json:"snapshot"`
			Artifacts map[string]bool     `json:"artifacts"`
			CORS      map[string][]string `json:"cors"`
		}
		decodeBody(t, w, &got)

		if !got.OK {
			t.Error("ok should be true")
		}
		if got.Snapshot["snapshot_as_of"] != "2025-06-01T04:00:00Z" {
			t.Errorf("snapshot = %v", got.Snapshot)
		}
		wantArtifacts := map[string]bool{
			"forecasts": true,
			"xgb":       false,
			"xgb_meta":  false,
			"hotspots":  false,
			"survival":  false,
		}
		if diff := cmp.Diff(wantArtifacts, got.Artifacts); diff != "" {
			t.Errorf("artifacts mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"*"}, got.CORS["allow_origins"]); diff != "" {
			t.Errorf("cors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("never fails with nothing loaded", func(t *testing.T) {
		router := newTestRouter(t.TempDir())

		w := doGET(router, "/health")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var got struct {
			OK       bool           `json:"ok"`
			Snapshot map[string]any `json:"snapshot"`
		}
		decodeBody(t, w, &got)
		if !got.OK {
			t.Error("ok should be true even with no artifacts")
		}
		if got.Snapshot == nil || len(got.Snapshot) != 0 {
			t.Errorf("snapshot = %v, want empty object", got.Snapshot)
		}
	})
}
