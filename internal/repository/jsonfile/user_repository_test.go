package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/domain"
)

func TestInitCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "usuarios.json")
	repo := NewUserRepository(path, nil)

	require.NoError(t, repo.Init(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestInitKeepsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.json")
	existing := `[{"nomeCompleto":"Ana Souza","usuario":"ana","sexo":"F","idade":31}]`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	repo := NewUserRepository(path, nil)
	require.NoError(t, repo.Init(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestLoadDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		repo := NewUserRepository(filepath.Join(dir, "missing.json"), nil)
		users, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NotNil(t, users)
	})

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		users, err := NewUserRepository(path, nil).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("null", func(t *testing.T) {
		path := filepath.Join(dir, "null.json")
		require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))
		users, err := NewUserRepository(path, nil).Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	repo := NewUserRepository(path, nil)
	require.NoError(t, repo.Init(ctx))

	want := []domain.User{
		{FullName: "Ana Souza", Username: "ana", Sex: domain.SexFemale, Age: 31},
		{FullName: "Bruno Lima", Username: "bruno", Sex: domain.SexMale, Age: 40},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveWritesDocumentFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	repo := NewUserRepository(path, nil)

	require.NoError(t, repo.Save(ctx, []domain.User{
		{FullName: "Ana Souza", Username: "ana", Sex: domain.SexFemale, Age: 31},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]any{
		"nomeCompleto": "Ana Souza",
		"usuario":      "ana",
		"sexo":         "F",
		"idade":        float64(31),
	}, raw[0])
	assert.Contains(t, string(data), "\n  {\n    \"nomeCompleto\"")
}

func TestSaveEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	repo := NewUserRepository(path, nil)

	require.NoError(t, repo.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveDoesNotEscapeHTMLCharacters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	repo := NewUserRepository(path, nil)

	users := []domain.User{{FullName: "Ana & Bia <x>", Username: "ana", Sex: domain.SexFemale, Age: 31}}
	require.NoError(t, repo.Save(ctx, users))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"nomeCompleto\": \"Ana & Bia <x>\",\n    \"usuario\": \"ana\",\n    \"sexo\": \"F\",\n    \"idade\": 31\n  }\n]", string(data))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}
