package bucket

import "errors"

// Sentinel errors for the bucket package.
var (
	// ErrEmptyFactors indicates CompileBucketTree was given no factors.
	ErrEmptyFactors = errors.New("bucket: no factors to compile")

	// ErrFactorOutsideOrdering indicates a factor's scope mentions a
	// variable absent from the elimination ordering.
	ErrFactorOutsideOrdering = errors.New("bucket: factor references a variable outside the ordering")
)
