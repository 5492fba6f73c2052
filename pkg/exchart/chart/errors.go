package chart

import "errors"

// ErrMissingValues indicates a series was added without a values reference.
var ErrMissingValues = errors.New("series values must be specified")

// ErrUnknownType indicates an unsupported chart type.
var ErrUnknownType = errors.New("unknown chart type")

// ErrUnknownDataID indicates a cache lookup of an id that was never assigned.
var ErrUnknownDataID = errors.New("unknown chart data id")
