package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/file"
)

func TestStore_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos", "dss.json")
	ctx := context.Background()

	s1, err := file.Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "empleados", []int{1001, 1002}))

	// Reabrir el mismo archivo debe recuperar lo escrito
	s2, err := file.Open(path)
	require.NoError(t, err)

	var ids []int
	found, err := s2.Get(ctx, "empleados", &ids)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1001, 1002}, ids)
}

func TestStore_ArchivoInexistenteArrancaVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuevo.json")

	s, err := file.Open(path)
	require.NoError(t, err)

	var dest []int
	found, err := s.Get(context.Background(), "algo", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_RunInTxEscribeUnaSolaVez(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.json")
	ctx := context.Background()

	s, err := file.Open(path)
	require.NoError(t, err)

	err = s.RunInTx(ctx, func(tx storage.KVStore) error {
		if err := tx.Set(ctx, "a", "x"); err != nil {
			return err
		}
		return tx.Set(ctx, "b", "y")
	})
	require.NoError(t, err)

	s2, err := file.Open(path)
	require.NoError(t, err)
	var a, b string
	found, err := s2.Get(ctx, "a", &a)
	require.NoError(t, err)
	require.True(t, found)
	found, err = s2.Get(ctx, "b", &b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)
}

func TestStore_RunInTxRollbackNoToca(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rb.json")
	ctx := context.Background()

	s, err := file.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "a", "original"))

	err = s.RunInTx(ctx, func(tx storage.KVStore) error {
		if err := tx.Set(ctx, "a", "descartado"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	s2, err := file.Open(path)
	require.NoError(t, err)
	var a string
	_, err = s2.Get(ctx, "a", &a)
	require.NoError(t, err)
	assert.Equal(t, "original", a)
}
