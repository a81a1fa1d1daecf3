package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/ghostgame/internal/api/apierr"
	"github.com/mcoot/ghostgame/internal/api/handler"
	"github.com/mcoot/ghostgame/internal/api/response"
	"github.com/mcoot/ghostgame/internal/middleware"
	"github.com/mcoot/ghostgame/internal/services/match"
)

// WordCounter reports the size of the loaded dictionary
type WordCounter interface {
	WordCount() int
}

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	MatchController match.ControllerInterface
	Dictionary      WordCounter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	matchHandler := handler.NewMatchHandler(cfg.MatchController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.RequestID)
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler(cfg.Dictionary)).Methods(http.MethodGet)

	matches := api.PathPrefix("/matches").Subrouter()
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Abandon).Methods(http.MethodDelete)
	matches.HandleFunc("/{id}/moves", matchHandler.Move).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/rematch", matchHandler.Rematch).Methods(http.MethodPost)

	return r
}

func healthHandler(dict WordCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response.HealthResponse{Status: "ok"}
		if dict != nil {
			resp.DictionaryWords = dict.WordCount()
		}
		response.JSON(w, http.StatusOK, resp)
	}
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
