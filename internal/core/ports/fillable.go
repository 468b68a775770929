package ports

import "go.trai.ch/fractile/internal/core/domain"

// Fillable is a unit of progressive work the worker pool can run.
//
//go:generate mockgen -source=fillable.go -destination=mocks/mock_fillable.go -package=mocks
type Fillable interface {
	// Fill advances the work by one level or until a cancellation checkpoint.
	Fill() domain.FillResult

	// Release clears the in-flight marker once the pool stops tracking the work.
	Release()
}
