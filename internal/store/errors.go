package store

import "errors"

// Error kinds surfaced by the stores and the reconciliation engine. Callers
// distinguish them with errors.Is; messages carry the detail.
var (
	// ErrValidation covers missing or malformed required input (blank name,
	// negative amount, malformed date bound).
	ErrValidation = errors.New("validation error")

	// ErrNotFound means the operation targeted an id that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDeletedRecord means a mutation that requires the Active state was
	// attempted on a soft-deleted record. Restore it first.
	ErrDeletedRecord = errors.New("record is deleted")

	// ErrActiveRecord means restore was attempted on a record that is not
	// deleted. Surfaced rather than treated as a no-op so caller bugs show.
	ErrActiveRecord = errors.New("record is not deleted")

	// ErrDuplicateName means an active ledger of the same kind already has
	// the normalized name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrOrphanReference means a foreign id (siteId, contractId, ...) did
	// not resolve to an existing record.
	ErrOrphanReference = errors.New("orphan reference")
)
