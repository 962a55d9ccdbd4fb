package storage

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("exports/roster.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "exports/roster.csv", name)

	file, err := store.Open(name)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck
	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))
}

func TestLocalStorageSaveStream(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveStream("resumes/cv.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	file, err := store.Open("resumes/cv.pdf")
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.txt", []byte("x"))
	assert.Error(t, err)

	_, err = store.Open("/etc/passwd")
	assert.Error(t, err)

	_, err = store.SaveStream("a/../../escape.txt", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("old.csv", []byte("stale"))
	require.NoError(t, err)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(store.Path("old.csv"), past, past))
	_, err = store.Save("fresh.csv", []byte("new"))
	require.NoError(t, err)

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.csv"}, deleted)

	_, err = store.Open("fresh.csv")
	assert.NoError(t, err)
}
