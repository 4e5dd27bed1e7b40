package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/somi-im/somi/internal/codec"
	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/logger"
)

// maxRestoreBytes bounds restore payloads.
const maxRestoreBytes = 32 << 20

// ExportCSV streams the whole collection as a UTF-8 CSV with a BOM so
// spreadsheet tools pick up the encoding.
func ExportCSV(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := codec.ExportCSV(d.Catalog.Snapshot())

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+codec.CSVFilename(d.Now())+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

// Backup streams the whole collection as pretty-printed JSON.
func Backup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := codec.MarshalBackup(d.Catalog.Snapshot())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "backup failed")
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+codec.BackupFilename(d.Now())+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// Restore replaces the whole collection with a previously exported backup.
// The payload only has to be a JSON array: record fields are taken as-is,
// readers stay defensive about their content.
func Restore(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() { _ = r.Body.Close() }()

		data, err := io.ReadAll(io.LimitReader(r.Body, maxRestoreBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		records, err := codec.UnmarshalBackup(data)
		switch {
		case errors.Is(err, codec.ErrBackupParse):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, codec.ErrInvalidBackupShape):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		d.Catalog.Restore(r.Context(), records)
		d.Logger.Info("collection restored from backup", logger.Int("records", len(records)))
		writeJSON(w, http.StatusOK, map[string]int{"restored": len(records)})
	}
}
