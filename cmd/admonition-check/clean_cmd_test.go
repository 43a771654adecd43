package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/system"
)

func TestCleanRemovesOutputAndReleasesLock(t *testing.T) {
	site := t.TempDir()
	page := filepath.Join(site, "public", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0755))
	require.NoError(t, os.WriteFile(page, []byte("<p>old</p>"), 0644))

	_, err := runCommand(t, "clean", "--site-dir", site, "--yes")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(site, "public"))

	lock := system.NewRunLock(filepath.Join(site, "public"))
	require.NoError(t, lock.TryLock())
	assert.NoError(t, lock.Unlock())
}

func TestCleanRefusesWhileLocked(t *testing.T) {
	site := t.TempDir()
	held := system.NewRunLock(filepath.Join(site, "public"))
	require.NoError(t, held.TryLock())
	t.Cleanup(func() { _ = held.Unlock() })

	_, err := runCommand(t, "clean", "--site-dir", site, "--yes")
	assert.ErrorIs(t, err, system.ErrLocked)
}
