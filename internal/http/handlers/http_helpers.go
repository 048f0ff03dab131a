package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/medicine-inventory/internal/dates"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
)

// today is the UTC calendar date every derived field of a request is
// computed against.
func (s *Server) today() string {
	return dates.Today(s.now())
}

func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	if err := response.JSON(w, http.StatusOK, data); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

// fail writes err as an error envelope; unexpected errors become a 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	response.Error(w, s.log, err)
}

// pathParam returns a decoded URL parameter.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
