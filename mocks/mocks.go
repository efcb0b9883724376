// Package mocks holds hand-written testify doubles for the port and service
// interfaces. They exist so service tests can script repository and storage
// behavior without a database or an S3 endpoint.
package mocks

import "github.com/stretchr/testify/mock"

// get pulls a typed return value out of recorded call arguments, mapping an
// untyped nil (the usual "no result" in a .Return(nil, err)) to the type's
// zero value.
func get[T any](args mock.Arguments, index int) T {
	var zero T
	if v, ok := args.Get(index).(T); ok {
		return v
	}
	return zero
}
