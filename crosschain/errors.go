// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import "github.com/pkg/errors"

// Kind identifies which precondition or cryptographic check failed during
// proof construction. Every Kind here is fatal to the in-flight proof —
// spec.md §7 names none of them as locally recoverable.
type Kind int

const (
	// TxNotFound: the transaction is unknown to the chain index.
	TxNotFound Kind = iota
	// TxInMempool: the transaction exists but has not confirmed yet.
	TxInMempool
	// NotarisationNotConfirmed: no own-symbol notarisation was found
	// within SCAN_LIMIT_BLOCKS of the transaction's block.
	NotarisationNotConfirmed
	// SourceNotarisationMissing: an assetchain proof names a
	// notarisation txid the hub has no record of.
	SourceNotarisationMissing
	// TargetNotarisationNotFound: the target chain was not notarised
	// within the forward-scan window.
	TargetNotarisationNotFound
	// EmptyProofRoot: the proof-root scan never saw a second
	// own-symbol notarisation; the window is under-confirmed.
	EmptyProofRoot
	// MomNotInWindow: the source MoM does not appear among the MoMs
	// collected for the target window — the caller's asset proof is
	// stale.
	MomNotInWindow
	// MerkleInconsistency: a locally reconstructed Merkle branch does
	// not reproduce the committed root. Indicates a bug or adversarial
	// state; never occurs on honest input.
	MerkleInconsistency
	// ProofSelfCheck: the final composed branch does not reproduce the
	// target root. Same severity as MerkleInconsistency.
	ProofSelfCheck
	// MalformedImport: the import transaction failed to parse.
	MalformedImport
	// MalformedBurn: the burn transaction embedded in an import failed
	// to parse, or its payouts hash did not match.
	MalformedBurn
	// BlockPruned: the block backing a proof step has been pruned from
	// local storage.
	BlockPruned
	// BacknotarisationPending: no next backnotarisation has been
	// recorded yet for this assetchain.
	BacknotarisationPending
)

func (k Kind) String() string {
	switch k {
	case TxNotFound:
		return "TxNotFound"
	case TxInMempool:
		return "TxInMempool"
	case NotarisationNotConfirmed:
		return "NotarisationNotConfirmed"
	case SourceNotarisationMissing:
		return "SourceNotarisationMissing"
	case TargetNotarisationNotFound:
		return "TargetNotarisationNotFound"
	case EmptyProofRoot:
		return "EmptyProofRoot"
	case MomNotInWindow:
		return "MomNotInWindow"
	case MerkleInconsistency:
		return "MerkleInconsistency"
	case ProofSelfCheck:
		return "ProofSelfCheck"
	case MalformedImport:
		return "MalformedImport"
	case MalformedBurn:
		return "MalformedBurn"
	case BlockPruned:
		return "BlockPruned"
	case BacknotarisationPending:
		return "BacknotarisationPending"
	default:
		return "Unknown"
	}
}

// Error is a typed, fatal-to-the-proof error carrying a short diagnostic.
// Its cause is built with github.com/pkg/errors and records a stack trace
// from where it originated; Error itself formats only as Kind and message,
// so the trace is printed by formatting the unwrapped cause with %+v.
type Error struct {
	Kind  Kind
	cause error
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, cause: errors.New(msg)}
}

func wrapErr(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, cause: errors.Wrap(cause, msg)}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Is supports errors.Is(err, &Error{Kind: SomeKind}) by treating any
// *Error target as a sentinel for "an *Error of this Kind"; targets of
// any other type never match.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
