package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rkoenig/twophase/internal/kociemba"
)

type ApplyRequest struct {
	Moves []int `json:"moves"`
}

type ApplyResponse struct {
	Twist       int    `json:"twist"`
	Flip        int    `json:"flip"`
	SliceSorted int    `json:"slice_sorted"`
	Facelets    string `json:"facelets"`
}

type TablesStatsResponse struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Path    string `json:"path"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	moves, err := toMoves(req.Moves)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing moves: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, m := range moves {
		s.cube.ApplyMove(m)
	}
	c := s.cube
	s.mu.Unlock()

	response := ApplyResponse{
		Twist:       c.GetTwist(),
		Flip:        c.GetFlip(),
		SliceSorted: c.GetSliceSorted(),
		Facelets:    kociemba.Render(kociemba.FaceletsOf(&c), false),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleTablesStats(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing ?name= (one of "+strings.Join(kociemba.CoordNames(), ", ")+")", http.StatusBadRequest)
		return
	}

	stats, err := s.store.Stats(name)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading %s table: %v", name, err), http.StatusInternalServerError)
		return
	}

	response := TablesStatsResponse{
		Name:    stats.Name,
		Entries: stats.Entries,
		Path:    stats.Path,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	indices, err := parseQueryMoves(r.URL.Query().Get("moves"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing moves: %v", err), http.StatusBadRequest)
		return
	}
	moves, err := toMoves(indices)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing moves: %v", err), http.StatusBadRequest)
		return
	}

	c := kociemba.Solved()
	for _, m := range moves {
		c.ApplyMove(m)
	}

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, kociemba.Render(kociemba.FaceletsOf(&c), false))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func parseQueryMoves(q string) ([]int, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}
	fields := strings.Split(q, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parsing move index %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func toMoves(indices []int) ([]kociemba.Move, error) {
	moves := make([]kociemba.Move, 0, len(indices))
	for _, n := range indices {
		if n < 0 || n >= kociemba.NMove {
			return nil, fmt.Errorf("move index %d out of range [0,%d)", n, kociemba.NMove)
		}
		moves = append(moves, kociemba.Move(n))
	}
	return moves, nil
}
