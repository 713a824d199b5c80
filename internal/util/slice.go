package util

// Contains reports whether v is in s
func Contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// AppendUnique appends the elements of v not yet in s
func AppendUnique[T comparable](s []T, v ...T) []T {
	for _, e := range v {
		if !Contains(s, e) {
			s = append(s, e)
		}
	}
	return s
}

// Clone returns a shallow copy of s, nil when s is empty
func Clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}
