package handlers

import (
	"net/http"
	"sync"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
	"github.com/aaronzipp/imposter/internal/random"
	"github.com/aaronzipp/imposter/internal/store"
)

// Categories lists what the selection screen can offer
type Categories interface {
	game.WordSupplier
	Categories() []models.Category
}

// Context holds shared application dependencies
type Context struct {
	Tables   *store.TableStore
	Words    Categories
	Rotation game.RotationPolicy
	BaseURL  string // used for QR links; empty means derive from the request
	Debug    bool   // verbose logging here and in every table hub

	randMu sync.Mutex
	rand   *random.Source
}

// NewContext wires the handler dependencies
func NewContext(tables *store.TableStore, words Categories, src *random.Source, rotation game.RotationPolicy, baseURL string) *Context {
	return &Context{
		Tables:   tables,
		Words:    words,
		Rotation: rotation,
		BaseURL:  baseURL,
		rand:     src,
	}
}

// Routes registers every endpoint on mux
func (ctx *Context) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/health", ctx.HandleHealth)
	mux.HandleFunc("/categories", ctx.HandleCategories)
	mux.HandleFunc("/tables", ctx.HandleCreateTable)
	mux.HandleFunc("/tables/", ctx.HandleTableMux)
}

// HandleHealth reports liveness
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HandleCategories lists the categories of the word pool
func (ctx *Context) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, ctx.Words.Categories())
}

func (ctx *Context) nextRand() (game.Rand, error) {
	ctx.randMu.Lock()
	defer ctx.randMu.Unlock()
	return ctx.rand.Next()
}
