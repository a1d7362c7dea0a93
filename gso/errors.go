package gso

// Error is a GSO package error: a small closed set of sentinel string
// constants, comparable with == and errors.Is, in the style of
// mat64/matrix.go's type Error string / ErrShape.
type Error string

func (e Error) Error() string { return string(e) }

// Precondition errors: fatal to the calling operation, engine state left
// unchanged. These are caller bugs, not expected runtime outcomes, so
// operations panic with them rather than returning an error, the same
// convention mat.Dense uses for ErrShape. ErrConfig is the one exception:
// New returns it rather than panicking.
const (
	// ErrConfig reports an incompatible combination of Options at
	// construction: inv_transform without transform, or int_gram
	// together with cols_locked.
	ErrConfig = Error("gso: incompatible configuration")

	// ErrIndexOutOfRange reports a row or column index outside the
	// engine's current bounds.
	ErrIndexOutOfRange = Error("gso: index out of range")

	// ErrOrder reports an operation that requires i < j receiving
	// operands in the other order (row_swap).
	ErrOrder = Error("gso: expected i < j")

	// ErrRowSwapForbidden reports row_swap called while
	// inv_transform_enabled is set; there is no supported alternative,
	// so this is a hard precondition failure.
	ErrRowSwapForbidden = Error("gso: row_swap is forbidden when inv_transform_enabled")

	// ErrColumnsLocked reports an operation, such as lock_cols itself,
	// attempted while int_gram is enabled (cols_locked implies
	// !int_gram) or while already locked.
	ErrColumnsLocked = Error("gso: column lock is not permitted under int_gram, or is already held")

	// ErrNotUnlocked reports unlock_cols called while columns are not
	// locked.
	ErrNotUnlocked = Error("gso: columns are not locked")

	// ErrUnbracketed reports a row mutator called outside a
	// row_op_begin/row_op_end bracket.
	ErrUnbracketed = Error("gso: row mutation outside row_op_begin/row_op_end bracket")

	// ErrAlreadyBracketed reports a nested row_op_begin.
	ErrAlreadyBracketed = Error("gso: row_op_begin called while already bracketed")

	// ErrBracketMismatch reports row_op_end with bounds that do not
	// match the open row_op_begin.
	ErrBracketMismatch = Error("gso: row_op_end does not match the open row_op_begin")

	// ErrGSOPrecondition reports update_gso_row called with last_j
	// outside [0, n_source_rows), or against a column whose own
	// gso_valid_cols precondition is unmet.
	ErrGSOPrecondition = Error("gso: update_gso_row precondition violated")
)
