package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/domain"
	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/logger"
)

// CreateRecord handles manual add from the admin form.
func CreateRecord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.AddInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := d.Catalog.Add(r.Context(), in)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		d.Logger.Info("record added",
			logger.String("id", rec.ID),
			logger.String("name", rec.Name))
		writeJSON(w, http.StatusCreated, rec)
	}
}

// UpdateRecord swaps the whole record under the id in the URL.
func UpdateRecord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec domain.Record
		if err := decodeJSON(r, &rec); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		rec.ID = chi.URLParam(r, "id")
		rec.Status = domain.NormalizeStatus(string(rec.Status))

		err := d.Catalog.Update(r.Context(), rec)
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeJSON(w, http.StatusOK, rec)
		}
	}
}

// DeleteRecord removes one record by id.
func DeleteRecord(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Catalog.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		d.Logger.Info("record deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

type batchStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// BatchStatus sets one of the three known statuses on the selected ids.
func BatchStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		status := domain.Status(req.Status)
		if !status.Known() {
			writeError(w, http.StatusUnprocessableEntity, "unknown status")
			return
		}

		updated := d.Catalog.BatchStatus(r.Context(), req.IDs, status)
		writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
	}
}

type batchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BatchDelete removes the selected ids.
func BatchDelete(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchDeleteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		deleted := d.Catalog.BatchDelete(r.Context(), req.IDs)
		writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
	}
}
