package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/importer"
	"github.com/somi-im/somi/internal/logger"
)

// maxImportBytes bounds uploaded import files.
const maxImportBytes = 10 << 20

type previewTextRequest struct {
	Text string `json:"text"`
}

type previewResponse struct {
	Session    string               `json:"session"`
	Count      int                  `json:"count"`
	Candidates []importer.Candidate `json:"candidates"`
}

// ImportPreview parses free text or an uploaded file into candidates and
// stores them in a preview session. The live collection is not touched:
// the caller either commits the session or abandons it.
//
// Two upload modes share the endpoint: multipart form data with a "file"
// field (header line containing "domain" is skipped), or a JSON body
// with a "text" field.
func ImportPreview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := parsePreviewInput(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(candidates) == 0 {
			writeError(w, http.StatusUnprocessableEntity, importer.ErrEmptyImport.Error())
			return
		}

		session := d.Sessions.Create(candidates)
		d.Logger.Info("import preview created",
			logger.String("session", session),
			logger.Int("candidates", len(candidates)))

		writeJSON(w, http.StatusOK, previewResponse{
			Session:    session,
			Count:      len(candidates),
			Candidates: candidates,
		})
	}
}

func parsePreviewInput(r *http.Request) ([]importer.Candidate, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, errors.New("invalid multipart upload")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("missing file field")
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if err != nil {
			return nil, errors.New("failed to read uploaded file")
		}
		return importer.ParseFile(data), nil
	}

	var req previewTextRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, errors.New("invalid request body")
	}
	return importer.ParseText(req.Text), nil
}

// ImportCommit merges a previewed session into the collection.
func ImportCommit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := chi.URLParam(r, "session")
		candidates, ok := d.Sessions.Get(session)
		if !ok {
			writeError(w, http.StatusNotFound, "preview session not found")
			return
		}

		added, err := d.Catalog.ImportCommit(r.Context(), candidates)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		d.Sessions.Delete(session)
		d.Logger.Info("import committed",
			logger.String("session", session),
			logger.Int("added", added))
		writeJSON(w, http.StatusOK, map[string]int{"added": added})
	}
}

// ImportAbort discards a preview session without touching the collection.
func ImportAbort(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Sessions.Delete(chi.URLParam(r, "session"))
		w.WriteHeader(http.StatusNoContent)
	}
}
