package codec

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/somi-im/somi/internal/domain"
)

var (
	// ErrBackupParse means the uploaded backup is not valid JSON.
	ErrBackupParse = errors.New("backup is not valid JSON")

	// ErrInvalidBackupShape means the backup parsed but its top-level
	// value is not an array of records.
	ErrInvalidBackupShape = errors.New("backup is not an array of records")
)

// MarshalBackup serializes the whole collection as a pretty-printed JSON
// array, 2-space indented.
func MarshalBackup(records []domain.Record) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// UnmarshalBackup decodes an uploaded backup.
//
// The only structural requirement is "valid JSON whose top level is an
// array": individual records are trusted verbatim, with no per-record
// schema validation, so restored data may carry unknown status values or
// missing fields. Consumers are written to tolerate such records rather
// than this decoder rejecting them.
func UnmarshalBackup(data []byte) ([]domain.Record, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrBackupParse
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrInvalidBackupShape
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Top level is an array but the elements are not record-shaped
		// objects (e.g. an array of numbers).
		return nil, ErrInvalidBackupShape
	}
	return records, nil
}

// BackupFilename returns the download name for a backup taken at now.
func BackupFilename(now time.Time) string {
	return "somi_backup_" + now.Format("2006-01-02") + ".json"
}
