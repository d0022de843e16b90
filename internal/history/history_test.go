// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err, "Open must create parent directories")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndRecent(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Add(`\d+`, "go_re2"))
	require.NoError(t, s.Add(`\w+@\w+`, "pcre_full"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, `\w+@\w+`, entries[0].Pattern)
	assert.Equal(t, "pcre_full", entries[0].ProfileID)
	assert.Equal(t, `\d+`, entries[1].Pattern)
	assert.False(t, entries[0].UsedAt.IsZero())
}

func TestAddCollapsesImmediateDuplicates(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Add("abc", "go_re2"))
	require.NoError(t, s.Add("abc", "pcre_full"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1, "immediate repeat must collapse")
	assert.Equal(t, "pcre_full", entries[0].ProfileID, "collapse keeps the latest profile")

	// A different pattern in between breaks the collapse.
	require.NoError(t, s.Add("xyz", "go_re2"))
	require.NoError(t, s.Add("abc", "go_re2"))

	entries, err = s.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestAddIgnoresEmptyPattern(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Add("", "go_re2"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Add(p, ""))
	}

	entries, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "d", entries[0].Pattern)

	entries, err = s.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add("persisted", "pcre_full"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Pattern)
}
