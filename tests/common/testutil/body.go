//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMutator edits a request body after it has been flattened to JSON fields.
type BodyMutator func(map[string]any)

// Set overwrites a field, including with values of the wrong JSON type.
func Set(key string, value any) BodyMutator {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) BodyMutator {
	return func(m map[string]any) { delete(m, key) }
}

// BodyMap round-trips a request DTO through JSON so tests can send malformed variants of it.
func BodyMap(t *testing.T, v any, muts ...BodyMutator) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range muts {
		mutate(m)
	}
	return m
}
