package scenario

import "errors"

var (
	// ErrInvalidSize indicates a non-positive city count.
	ErrInvalidSize = errors.New("scenario: city count must be positive")

	// ErrUnknownDifficulty indicates a difficulty name that is not recognized.
	ErrUnknownDifficulty = errors.New("scenario: unknown difficulty")

	// ErrForeignCity indicates a CostTo query against a city of another scenario.
	ErrForeignCity = errors.New("scenario: city belongs to a different scenario")

	// ErrEmptyScenario indicates a file that carries neither costs nor points.
	ErrEmptyScenario = errors.New("scenario: no costs and no points")

	// ErrAmbiguousScenario indicates a file that carries both costs and points.
	ErrAmbiguousScenario = errors.New("scenario: both costs and points given")

	// ErrNonSquare indicates a cost table whose rows differ from its size.
	ErrNonSquare = errors.New("scenario: cost table is not square")

	// ErrInvalidCost indicates a negative or NaN cost.
	ErrInvalidCost = errors.New("scenario: cost must be a non-negative number")

	// ErrInvalidPoint indicates a malformed point in a scenario file.
	ErrInvalidPoint = errors.New("scenario: invalid point")

	// ErrInvalidEdge indicates a removed edge that references an unknown city.
	ErrInvalidEdge = errors.New("scenario: removed edge out of range")
)
