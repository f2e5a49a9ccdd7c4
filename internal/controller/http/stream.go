package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/auth"
)

// StreamRewardState pushes reward-state snapshots to the client as
// server-sent events until the client disconnects. Every event carries
// the full current document; the client must treat each one as the
// authoritative state.
func (c *Controller) StreamRewardState(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates, cancel := c.service.Subscribe(auth.GetTokenInfo[model.TokenInfo](r).StudentID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}

			payload, err := json.Marshal(state)
			if err != nil {
				c.lg.Errorf("failed to marshal reward state event: %v", err)
				return
			}

			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
