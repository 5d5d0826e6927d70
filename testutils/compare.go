package testutils

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Compare fails the test if got and want differ, printing the difference.
func Compare[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// CompareMapKeys checks that the keys of m are exactly keys
func CompareMapKeys[V any](t *testing.T, m map[string]V, keys []string) {
	t.Helper()
	got := make([]string, 0, len(m))
	for k := range m {
		got = append(got, k)
	}
	want := append([]string{}, keys...)
	sort.Strings(got)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
		t.Errorf("difference %+v", Difference(got, want))
	}
}

// Difference between two slices
func Difference(slice1, slice2 []string) []string {
	diff := []string{}
	m := map[string]int{}

	for _, v := range slice1 {
		m[v] = 1
	}
	for _, v := range slice2 {
		m[v] = m[v] + 1
	}

	for k, v := range m {
		if v == 1 {
			diff = append(diff, k)
		}
	}
	sort.Strings(diff)

	return diff
}
