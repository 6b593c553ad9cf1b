package pca

import "errors"

var (
	// ErrInvalidInput is returned when a matrix cannot be decomposed at
	// all, e.g. it has zero rows or columns or contains NaN or Inf
	ErrInvalidInput = errors.New("pca: invalid input matrix")

	// ErrInvalidArgument is returned when a requested rank or component
	// count is outside what the decomposition supports
	ErrInvalidArgument = errors.New("pca: invalid argument")

	// ErrIndexOutOfRange is returned by the per-component accessors
	ErrIndexOutOfRange = errors.New("pca: index out of range")

	// ErrComputation is returned when gonum fails to factorize
	ErrComputation = errors.New("pca: decomposition failed")
)
