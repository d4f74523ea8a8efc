package diag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLocaleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.toml")
	content := `locale = "de"

[messages]
file_not_found = "Datei '{0}' nicht gefunden."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	prev := SetLocaleTable(nil)
	defer SetLocaleTable(prev)

	require.NoError(t, LoadLocaleFile(path))
	d := New(MsgFileNotFound, "x.lm")
	require.Equal(t, "Datei 'x.lm' nicht gefunden.", d.Message)
}

func TestLoadLocaleFileRejectsBadTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"not a tag!\"\n"), 0o644))
	require.Error(t, LoadLocaleFile(path))
}

func TestMatchLocale(t *testing.T) {
	supported := []string{"en", "de", "pt-BR"}

	got, err := MatchLocale("de-AT", supported)
	require.NoError(t, err)
	require.Equal(t, "de", got)

	got, err = MatchLocale("", supported)
	require.NoError(t, err)
	require.Equal(t, "en", got)

	_, err = MatchLocale("???", supported)
	require.Error(t, err)
}
