package accumulate

// AccumulateSlice returns the running accumulation of list, starting with
// seed.  Element i of the result is the accumulation of list[0] to list[i].
//
// Example:
//
//	payments := []float64{10, 2.5, 7.5}
//	balances := AccumulateSlice(payments, 100.0, func(b, p float64) float64 {
//	    return b - p
//	})
//	// balances: [90 87.5 80]
func AccumulateSlice[T any, A any](list []T, seed A, f AccumulateFunc[A, T]) []A {
	out := make([]A, len(list))
	acc := seed
	for i, item := range list {
		acc = f(acc, item)
		out[i] = acc
	}

	return out
}

// ReduceSlice combines each element of list with f, starting with initial,
// returning the final value.  It returns the same value as the last element
// of AccumulateSlice, or initial if list is empty.
func ReduceSlice[T any, A any](list []T, initial A, f ReduceFunc[T, A]) A {
	cur := initial
	for _, item := range list {
		cur = f(cur, item)
	}

	return cur
}

// MapSlice transforms each element of list using f and returns the list of
// transformed elements.
//
// Example:
//
//	words := []string{"these", "are", "all", "lower"}
//	upper := MapSlice(words, strings.ToUpper)
func MapSlice[T any, M any](list []T, f MapFunc[T, M]) []M {
	out := make([]M, len(list))
	for i, item := range list {
		out[i] = f(item)
	}

	return out
}

// FilterSlice executes f for each element of list, returning a new slice of
// filtered elements in the same order as list
func FilterSlice[T any](list []T, f FilterFunc[T]) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if f(item) {
			out = append(out, item)
		}
	}

	return out
}
