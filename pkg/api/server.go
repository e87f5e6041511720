package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/brawler/pkg/api/handlers"
	"github.com/cbodonnell/brawler/pkg/api/middleware"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/state"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

// DefaultStreamInterval is how often the stream pushes the latest snapshot.
const DefaultStreamInterval = 100 * time.Millisecond

// APIServer is the read-only inspector for a running game. It serves the latest
// published snapshot over HTTP and streams it over a websocket.
type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port           int
	TLS            *TLSConfig
	Store          state.SnapshotStore
	StreamInterval time.Duration
}

// NewAPIServer creates a new http.Server for the inspector routes
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Store, opts.StreamInterval),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter returns the inspector routes.
func NewRouter(store state.SnapshotStore, streamInterval time.Duration) http.Handler {
	if streamInterval <= 0 {
		streamInterval = DefaultStreamInterval
	}

	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.CORS)

	router.Handle("/snapshot", gzhttp.GzipHandler(handlers.HandleGetSnapshot(store))).Methods(http.MethodGet)
	router.Handle("/ui", gzhttp.GzipHandler(handlers.HandleGetUI(store))).Methods(http.MethodGet)
	router.Handle("/actors/{kind}", gzhttp.GzipHandler(handlers.HandleListActors(store))).Methods(http.MethodGet)
	router.Handle("/stream", handlers.HandleStream(store, streamInterval)).Methods(http.MethodGet)

	return router
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
