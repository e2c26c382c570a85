// Error classification for the SQLite backend. Engine-level constraint
// failures are folded into the two integrity sentinels from pkg/types so
// callers never match on driver error codes.
package sqlite

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// classify maps SQLite errors onto the standard integrity errors.
// Foreign key failures become ErrReferential; every other member of the
// SQLITE_CONSTRAINT family (unique, check, not-null) becomes
// ErrConstraint. Unrecognized errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
		return types.ErrReferential
	}
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return types.ErrConstraint
	}
	return err
}
