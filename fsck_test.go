package sfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerrnl/gosfs"
)

func TestCheckCleanImageHasNoFindings(t *testing.T) {
	v := newVolume(t)
	require.NoError(t, v.Mkdir("/a", 0755))
	require.NoError(t, v.Create("/a/f", 0644))
	_, err := v.Write("/a/f", []byte("data"), 0)
	require.NoError(t, err)

	assert.Empty(t, sfs.Check(v), "Check found inconsistencies on a clean image")
}

// TestCheckDoesNotFlagDistinctNames is the negative case for duplicate-name
// detection: two different files in the same directory must never trip
// the check. The positive case, where a duplicate is actually planted,
// needs direct access to writeEntry and lives in fsck_internal_test.go.
func TestCheckDoesNotFlagDistinctNames(t *testing.T) {
	v := newVolume(t)
	require.NoError(t, v.Mkdir("/a", 0755))
	require.NoError(t, v.Create("/a/f", 0644))
	require.NoError(t, v.Create("/a/g", 0644))

	for _, f := range sfs.Check(v) {
		assert.NotEqual(t, "duplicate-name", f.Kind, "unexpected duplicate-name finding on a valid image: %v", f)
	}
}
