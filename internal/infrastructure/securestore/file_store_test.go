package securestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.enc")
}

func TestOpen_PassphraseVacia(t *testing.T) {
	_, err := Open(storePath(t), "")
	assert.Error(t, err)
}

func TestSetGetRemove_RoundTrip(t *testing.T) {
	s, err := Open(storePath(t), "clave-de-prueba")
	require.NoError(t, err)

	_, ok := s.Get("current_user_id")
	assert.False(t, ok)

	require.NoError(t, s.Set("current_user_id", "u1"))
	require.NoError(t, s.Set("current_username", "alice"))

	v, ok := s.Get("current_user_id")
	assert.True(t, ok)
	assert.Equal(t, "u1", v)

	require.NoError(t, s.Remove("current_user_id"))
	_, ok = s.Get("current_user_id")
	assert.False(t, ok)

	v, ok = s.Get("current_username")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestPersistencia_SobreviveReapertura(t *testing.T) {
	path := storePath(t)

	s, err := Open(path, "clave-de-prueba")
	require.NoError(t, err)
	require.NoError(t, s.Set("login_timestamp", "2026-08-26T10:00:00Z"))

	reopened, err := Open(path, "clave-de-prueba")
	require.NoError(t, err)
	v, ok := reopened.Get("login_timestamp")
	assert.True(t, ok)
	assert.Equal(t, "2026-08-26T10:00:00Z", v)
}

func TestPassphraseIncorrecta_FallaAlAbrir(t *testing.T) {
	path := storePath(t)

	s, err := Open(path, "clave-correcta")
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))

	_, err = Open(path, "clave-incorrecta")
	assert.Error(t, err, "una passphrase distinta no debe poder descifrar el almacén")
}

func TestRemoveAll_VaciaElAlmacen(t *testing.T) {
	path := storePath(t)

	s, err := Open(path, "clave-de-prueba")
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))

	require.NoError(t, s.RemoveAll())
	_, ok := s.Get("a")
	assert.False(t, ok)

	// También tras reabrir: la limpieza es persistente.
	reopened, err := Open(path, "clave-de-prueba")
	require.NoError(t, err)
	_, ok = reopened.Get("b")
	assert.False(t, ok)
}

func TestArchivoCorrupto_FallaAlAbrir(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("basura"), 0o600))

	_, err := Open(path, "clave-de-prueba")
	assert.Error(t, err)
}

func TestElArchivoNoContieneTextoPlano(t *testing.T) {
	path := storePath(t)

	s, err := Open(path, "clave-de-prueba")
	require.NoError(t, err)
	require.NoError(t, s.Set("current_username", "alice-visible"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice-visible", "el contenido debe quedar cifrado en disco")
}
