// Package api provides the settings handlers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// settingBody is the PUT payload for a single setting.
type settingBody struct {
	Value string `json:"value"`
}

// handleListSettings returns every stored setting.
func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.settings.All())
}

// handleGetSetting returns one setting by key.
func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	value, ok := s.settings.Get(key)
	if !ok {
		respondError(w, http.StatusNotFound, "setting not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

// handlePutSetting stores a setting and refreshes the analytics channel,
// since values like the starting balance change every computed report.
func (s *Server) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var body settingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.settings.Set(key, body.Value)
	s.publishAnalytics()

	respondJSON(w, http.StatusOK, map[string]string{"key": key, "value": body.Value})
}
