// Package api provides the trade CRUD handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/atlas-desktop/journal-backend/internal/store"
	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// tradeID extracts and parses the {id} path variable.
func tradeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// handleListTrades returns every journaled trade ordered by id.
func (s *Server) handleListTrades(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.trades.List())
}

// handleCreateTrade stores a new trade and broadcasts it.
func (s *Server) handleCreateTrade(w http.ResponseWriter, r *http.Request) {
	var trade types.TradeRecord
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.trades.Create(trade)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.afterTradeMutation(MsgTypeTradeCreated, created)
	respondJSON(w, http.StatusCreated, created)
}

// handleGetTrade returns a single trade by id.
func (s *Server) handleGetTrade(w http.ResponseWriter, r *http.Request) {
	id, err := tradeID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	trade, err := s.trades.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "trade not found")
			return
		}
		s.logger.Error("Failed to get trade", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get trade")
		return
	}

	respondJSON(w, http.StatusOK, trade)
}

// handleUpdateTrade replaces a stored trade and broadcasts the change.
func (s *Server) handleUpdateTrade(w http.ResponseWriter, r *http.Request) {
	id, err := tradeID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	var trade types.TradeRecord
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trade.ID = id

	updated, err := s.trades.Update(trade)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "trade not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.afterTradeMutation(MsgTypeTradeUpdated, updated)
	respondJSON(w, http.StatusOK, updated)
}

// handleDeleteTrade removes a trade and broadcasts the deletion.
func (s *Server) handleDeleteTrade(w http.ResponseWriter, r *http.Request) {
	id, err := tradeID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	if err := s.trades.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "trade not found")
			return
		}
		s.logger.Error("Failed to delete trade", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete trade")
		return
	}

	s.afterTradeMutation(MsgTypeTradeDeleted, map[string]int64{"id": id})
	respondJSON(w, http.StatusNoContent, nil)
}
