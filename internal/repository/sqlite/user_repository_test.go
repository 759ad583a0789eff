package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/domain"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	db, err := Open(filepath.Join(t.TempDir(), "data", "userreg.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Init(ctx), "init is idempotent")

	t.Run("EmptyLoad", func(t *testing.T) {
		users, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		want := []domain.User{
			{FullName: "Carla Dias", Username: "carla", Sex: domain.SexFemale, Age: 22},
			{FullName: "Ana Souza", Username: "ana", Sex: domain.SexFemale, Age: 31},
			{FullName: "Bruno Lima", Username: "bruno", Sex: domain.SexMale, Age: 40},
		}
		require.NoError(t, repo.Save(ctx, want))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("SaveReplacesRows", func(t *testing.T) {
		want := []domain.User{
			{FullName: "Bruno Lima", Username: "bruno", Sex: domain.SexMale, Age: 40},
		}
		require.NoError(t, repo.Save(ctx, want))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
