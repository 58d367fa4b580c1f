package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These errors represent generation-level failures. Anything that would let a
// malformed exam through (wrong point total, broken structural constraint) is
// fatal for the run, never a best-effort approximation.
// -----------------------------------------------------------------------------

// Generation errors
var (
	ErrTemplatesExhausted = errors.New("all templates for slot exhausted")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidSpec        = errors.New("invalid test spec")
)

// Solver errors
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidExpr    = errors.New("invalid expression")
	ErrUnknownUnit    = errors.New("unknown unit")
	ErrUnitDimension  = errors.New("units belong to different dimensions")
)

// Quality control errors
var (
	ErrTooSimilar  = errors.New("task too similar to previous task of category")
	ErrImplausible = errors.New("sampled parameter outside plausible bounds")
)

// Formatting errors
var (
	ErrNotFinite    = errors.New("value is not finite")
	ErrUnknownPlace = errors.New("unknown rounding place")
)

// Archive errors
var (
	ErrDocumentNotFound = errors.New("document not found")
)
