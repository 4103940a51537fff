package domain

import "errors"

// ErrInvalidProbability is returned by strict rule stores when a trigger probability is NaN or outside [0, 1].
var ErrInvalidProbability = errors.New("invalid rule probability")

// ErrPresetNotFound is returned when a preset name is not registered.
var ErrPresetNotFound = errors.New("preset not found")

// ErrInvalidConfig is returned when a run profile fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUnknownDimension is returned when geometry is requested for an unsupported dimensionality.
var ErrUnknownDimension = errors.New("unknown dimension")
