package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alertsPage = `---
title: "Alerts"
---

> [!NOTE]
> Useful information.

> A regular quote that should render as a blockquote.

> [!warning]+ Collapsible
> Careful now.

Some text mentioning [!TIP] outside a quote.

> [!TIP]
> Outer
>
> > [!CAUTION]
> > Nested
`

func TestAdmonitions(t *testing.T) {
	got := NewInspector().Admonitions([]byte(alertsPage))
	assert.Equal(t, []string{"note", "warning", "tip", "caution"}, got)
}

func TestAdmonitionsNone(t *testing.T) {
	got := NewInspector().Admonitions([]byte("# Heading\n\n> just a quote\n"))
	assert.Empty(t, got)
}

func TestCountAdmonitions(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"alerts.md":               alertsPage,
		"nested/blockquote.md":    "> [!NOTE]\n> again\n",
		"nested/plain.md":         "no quotes here\n",
		"nested/not-markdown.txt": "> [!NOTE]\n> ignored\n",
	}
	for rel, body := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	summary, err := NewInspector().CountAdmonitions(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total())
	assert.Equal(t, 2, summary.ByType["note"])
	assert.Equal(t, []string{"caution", "note", "tip", "warning"}, summary.Types())
	assert.Equal(t, []string{
		filepath.Join(dir, "alerts.md"),
		filepath.Join(dir, "nested", "blockquote.md"),
	}, summary.Files)
}

func TestCountAdmonitionsMissingDir(t *testing.T) {
	summary, err := NewInspector().CountAdmonitions(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total())
	assert.Empty(t, summary.Files)
}
