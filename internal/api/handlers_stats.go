package api

import (
	"encoding/json"
	"net/http"
)

// handleStats reports rolling document-processing latencies and queue depth.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"processing":  s.orchestrator.Stats().Snapshot(),
	})
}
