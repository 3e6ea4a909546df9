package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/pipeline-portal/internal/pkg/httputil"
	"github.com/ignite/pipeline-portal/internal/prefs"
)

// maxPrefsBytes caps a stored preference document. Column layouts and saved
// filters are small; anything bigger is a client bug.
const maxPrefsBytes = 64 * 1024

// requestUser resolves the preference owner from the forwarded identity
// header, falling back to a shared default for unauthenticated deployments.
func requestUser(r *http.Request) string {
	if u := r.Header.Get("X-Portal-User"); u != "" {
		return u
	}
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	return "default"
}

// GetPrefs returns the saved preference document for a view.
func (s *Server) GetPrefs(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	doc, err := s.prefs.Get(r.Context(), requestUser(r), view)
	if err != nil {
		if errors.Is(err, prefs.ErrNotFound) {
			httputil.NotFound(w, "no preferences saved for view "+view)
			return
		}
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, doc)
}

// PutPrefs stores a preference document for a view. The body must be valid
// JSON; it is stored opaquely and returned as-is on read.
func (s *Server) PutPrefs(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPrefsBytes+1))
	if err != nil {
		httputil.BadRequest(w, "failed to read request body")
		return
	}
	if len(body) > maxPrefsBytes {
		httputil.Error(w, http.StatusRequestEntityTooLarge, "preference document too large")
		return
	}
	if !json.Valid(body) {
		httputil.BadRequest(w, "preference document must be valid JSON")
		return
	}

	if err := s.prefs.Put(r.Context(), requestUser(r), view, body); err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string]string{"view": view, "status": "saved"})
}

// DeletePrefs removes the saved preference document for a view. Deleting a
// view that was never saved is not an error.
func (s *Server) DeletePrefs(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	if err := s.prefs.Delete(r.Context(), requestUser(r), view); err != nil && !errors.Is(err, prefs.ErrNotFound) {
		httputil.InternalError(w, err)
		return
	}
	httputil.NoContent(w)
}
