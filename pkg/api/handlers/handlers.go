package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/messages"
	"github.com/cbodonnell/brawler/pkg/state"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

func HandleGetSnapshot(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, _, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func HandleGetUI(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, _, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot.UI)
	}
}

// HandleListActors lists the actors of one kind in draw order.
func HandleListActors(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := gametypes.ActorKind(mux.Vars(r)["kind"])
		switch kind {
		case gametypes.ActorKindPlayer, gametypes.ActorKindThug, gametypes.ActorKindBoss:
		default:
			http.Error(w, "Unknown actor kind", http.StatusNotFound)
			return
		}

		snapshot, _, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}

		actors := make([]gametypes.ActorView, 0, len(snapshot.Actors))
		for _, a := range snapshot.Actors {
			if a.Kind == kind {
				actors = append(actors, a)
			}
		}
		writeJSON(w, actors)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleStream upgrades to a websocket and pushes the latest snapshot every interval
// whenever a new frame has been published. Frames are zstd-compressed JSON messages.
func HandleStream(store state.SnapshotStore, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		log.Debug("New inspector stream from %s", conn.RemoteAddr().String())

		ctx, cancel := context.WithCancel(r.Context())
		defer func() {
			cancel()
			conn.Close()
		}()

		// the stream is write-only; reading detects the client going away
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						log.Error("Error reading from inspector stream %s: %v", conn.RemoteAddr().String(), err)
					}
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var lastFrame uint64
		sent := false
		for {
			snapshot, frame, err := store.Get(ctx)
			if err != nil {
				log.Error("failed to get snapshot: %v", err)
				return
			}
			if !sent || frame != lastFrame {
				if err := writeSnapshot(conn, snapshot, frame); err != nil {
					log.Debug("Inspector stream to %s ended: %v", conn.RemoteAddr().String(), err)
					return
				}
				lastFrame = frame
				sent = true
			}

			select {
			case <-ctx.Done():
				log.Trace("Inspector stream closed for %s", conn.RemoteAddr().String())
				return
			case <-ticker.C:
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snapshot *gametypes.Snapshot, frame uint64) error {
	msg, err := messages.NewMessage(messages.MessageTypeSnapshot, frame, snapshot)
	if err != nil {
		return err
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.BinaryMessage, b)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
