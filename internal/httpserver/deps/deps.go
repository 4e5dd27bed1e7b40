package deps

import (
	"time"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/importer"
	"github.com/somi-im/somi/internal/logger"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	Catalog       *catalog.Service   // collection mutations + snapshots
	Cell          *catalog.Cell      // read-side collection access
	Sessions      *importer.Sessions // import preview sessions
	AdminPassword string             // shared admin password, compared verbatim
	AdminCIDRS    []string           // IPs allowed to reach the admin API (empty = all)
	TrustProxy    bool               // true if running behind a trusted reverse proxy
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
