// Package webapi exposes the kociemba core over HTTP: a server-held
// cube that moves can be applied to (returning its coordinates), plus
// read-only move-table and facelet endpoints. It never reaches into the core's
// internals, only its public API.
package webapi

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/rkoenig/twophase/internal/kociemba"
)

// Server holds one cube's worth of mutable state plus the move-table
// store, both shared across requests under a mutex.
type Server struct {
	router *mux.Router

	mu    sync.Mutex
	cube  kociemba.CubieCube
	store *kociemba.Store
}

// NewServer returns a Server with a solved cube and a move-table store
// rooted at tablesDir (empty means the package default).
func NewServer(tablesDir string) *Server {
	s := &Server{
		cube:  kociemba.Solved(),
		store: kociemba.NewStore(tablesDir),
	}
	s.router = mux.NewRouter()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/apply", s.handleApply).Methods("POST")
	api.HandleFunc("/tables/stats", s.handleTablesStats).Methods("GET")
	api.HandleFunc("/render", s.handleRender).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start blocks serving on addr until the listener fails.
func (s *Server) Start(addr string) error {
	log.Printf("webapi: listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
