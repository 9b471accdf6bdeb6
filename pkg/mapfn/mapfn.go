// Package mapfn holds generic slice helpers
package mapfn

// ConvertSlice converts a slice of type T to a slice of type R using fn
func ConvertSlice[T any, R any](input []T, fn func(T) R) []R {
	result := make([]R, len(input))
	for i, v := range input {
		result[i] = fn(v)
	}
	return result
}
