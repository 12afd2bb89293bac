// Package convert translates between the domain types of the client and the
// native types of the go-redis driver, and between structured arguments and
// their protocol token streams.
//
// Container conversions are built from a single element converter with the
// lift helpers below instead of one function per container shape.
package convert

import (
	"errors"
	"fmt"
)

// Slice applies f to every element of src. A nil src yields nil.
func Slice[S, T any](src []S, f func(S) T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst
}

// SliceE is Slice for element converters that can fail. The first error
// stops the conversion.
func SliceE[S, T any](src []S, f func(S) (T, error)) ([]T, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]T, len(src))
	for i, v := range src {
		t, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = t
	}
	return dst, nil
}

// Lift turns an element converter into a slice converter.
func Lift[S, T any](f func(S) T) func([]S) []T {
	return func(src []S) []T {
		return Slice(src, f)
	}
}

// LiftE turns a failing element converter into a slice converter.
func LiftE[S, T any](f func(S) (T, error)) func([]S) ([]T, error) {
	return func(src []S) ([]T, error) {
		return SliceE(src, f)
	}
}

// Map converts keys and values of src. A nil src yields nil.
func Map[K comparable, V any, K2 comparable, V2 any](src map[K]V, fk func(K) K2, fv func(V) V2) map[K2]V2 {
	if src == nil {
		return nil
	}
	dst := make(map[K2]V2, len(src))
	for k, v := range src {
		dst[fk(k)] = fv(v)
	}
	return dst
}

// MapValues converts the values of src and keeps its keys.
func MapValues[K comparable, V, V2 any](src map[K]V, f func(V) V2) map[K]V2 {
	return Map(src, Identity[K], f)
}

// Set converts src into a set. A nil src yields nil.
func Set[S any, T comparable](src []S, f func(S) T) map[T]struct{} {
	if src == nil {
		return nil
	}
	dst := make(map[T]struct{}, len(src))
	for _, v := range src {
		dst[f(v)] = struct{}{}
	}
	return dst
}

// Filter returns the elements of src for which keep is true.
func Filter[T any](src []T, keep func(T) bool) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, 0, len(src))
	for _, v := range src {
		if keep(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Fold reduces src from the left.
func Fold[T, A any](src []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range src {
		acc = f(acc, v)
	}
	return acc
}

// Identity returns v.
func Identity[T any](v T) T {
	return v
}

// ErrOddPairs is returned when a flat key/value reply has an odd length.
var ErrOddPairs = errors.New("convert: odd number of elements in key/value reply")

// Pairs groups a flat [k1, v1, k2, v2 ...] slice and converts every pair.
func Pairs[S, T any](src []S, f func(k, v S) (T, error)) ([]T, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddPairs
	}
	if src == nil {
		return nil, nil
	}
	dst := make([]T, 0, len(src)/2)
	for i := 0; i < len(src); i += 2 {
		t, err := f(src[i], src[i+1])
		if err != nil {
			return nil, err
		}
		dst = append(dst, t)
	}
	return dst, nil
}

// PairsToMap converts a flat [k1, v1, k2, v2 ...] reply into a map.
func PairsToMap(src []string) (map[string]string, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddPairs
	}
	m := make(map[string]string, len(src)/2)
	for i := 0; i < len(src); i += 2 {
		m[src[i]] = src[i+1]
	}
	return m, nil
}
