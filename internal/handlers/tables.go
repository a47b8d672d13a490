package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/protocol"
	"github.com/aaronzipp/imposter/internal/table"
	"github.com/google/uuid"
)

var errBadRequest = errors.New("bad request")

type createTableRequest struct {
	Players []string `json:"players"`
}

type createTableResponse struct {
	ID string `json:"id"`
}

// HandleCreateTable seats a roster and starts a table
func (ctx *Context) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createTableRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode roster: %w: %w", errBadRequest, err), nil)
		return
	}
	names, err := cleanNames(req.Players)
	if err != nil {
		writeError(w, err, nil)
		return
	}

	rng, err := ctx.nextRand()
	if err != nil {
		log.Printf("HandleCreateTable: random source: %v", err)
		writeError(w, err, nil)
		return
	}

	id := uuid.NewString()
	t := table.New(id, game.NewRoster(names), game.Env{
		Words:    ctx.Words,
		Rand:     rng,
		Rotation: ctx.Rotation,
	})
	t.Hub().Debug = ctx.Debug
	if err := ctx.Tables.Add(t); err != nil {
		log.Printf("HandleCreateTable: %v", err)
		writeError(w, err, nil)
		return
	}
	go t.Run()

	log.Printf("Created table: id=%s players=%d", id, len(names))
	writeJSON(w, http.StatusCreated, createTableResponse{ID: id})
}

// cleanNames trims names and enforces the roster size limits
func cleanNames(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("player name is required: %w", errBadRequest)
		}
		names = append(names, n)
	}
	if len(names) < game.MinPlayers {
		return nil, fmt.Errorf("need at least %d players, got %d: %w", game.MinPlayers, len(names), game.ErrInsufficientPlayers)
	}
	if len(names) > game.MaxPlayers {
		return nil, fmt.Errorf("at most %d players, got %d: %w", game.MaxPlayers, len(names), errBadRequest)
	}
	return names, nil
}

// HandleTableMux routes /tables/:id subpaths
func (ctx *Context) HandleTableMux(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/tables/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" || len(parts) > 2 {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	id := parts[0]
	seg := ""
	if len(parts) > 1 {
		seg = parts[1]
	}

	t, exists := ctx.Tables.Get(id)
	if !exists {
		http.Error(w, "Table not found", http.StatusNotFound)
		return
	}

	switch {
	case seg == "" && r.Method == http.MethodGet:
		ctx.tableState(w, r, t)
	case seg == "" && r.Method == http.MethodDelete:
		ctx.tableClose(w, r, id)
	case seg == "intents" && r.Method == http.MethodPost:
		ctx.tableIntent(w, r, t)
	case seg == "events" && r.Method == http.MethodGet:
		ctx.tableSSE(w, r, t)
	case seg == "ws" && r.Method == http.MethodGet:
		ctx.tableWS(w, r, t)
	case seg == "qr" && r.Method == http.MethodGet:
		ctx.tableQR(w, r, id)
	case seg == "" || seg == "intents" || seg == "events" || seg == "ws" || seg == "qr":
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func (ctx *Context) tableState(w http.ResponseWriter, r *http.Request, t *table.Table) {
	snap, err := t.Snapshot(r.Context())
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (ctx *Context) tableIntent(w http.ResponseWriter, r *http.Request, t *table.Table) {
	var env protocol.Envelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&env); err != nil {
		writeError(w, fmt.Errorf("decode envelope: %w: %w", errBadRequest, err), nil)
		return
	}
	in, err := protocol.DecodeIntent(env)
	if err != nil {
		writeError(w, err, nil)
		return
	}

	if ctx.Debug {
		log.Printf("tableIntent: table=%s intent=%s", t.ID, in.Kind())
	}

	snap, err := t.Apply(r.Context(), in)
	if err != nil {
		if snap.TableID == "" {
			// closed or cancelled before the table answered
			writeError(w, err, nil)
			return
		}
		writeError(w, err, &snap)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (ctx *Context) tableClose(w http.ResponseWriter, r *http.Request, id string) {
	t, ok := ctx.Tables.Delete(id)
	if !ok {
		http.Error(w, "Table not found", http.StatusNotFound)
		return
	}
	t.Stop()
	log.Printf("Closed table: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
