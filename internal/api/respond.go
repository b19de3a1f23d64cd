package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/leadflow/leadflow/internal/apperr"
)

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as an {"error": message} body. Application errors
// keep their code's status and message; anything else becomes a generic
// internal failure and is logged with its cause.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Code == apperr.CodeInternal {
			s.logger.Error("internal error", zap.Error(err))
		}
		writeJSON(w, ae.Code.HTTPStatus(), map[string]string{"error": ae.Message})
		return
	}

	s.logger.Error("internal error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
