package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
)

func TestStore_GetAntesDeSet(t *testing.T) {
	s := memory.New()

	var dest []string
	found, err := s.Get(context.Background(), "clave-inexistente", &dest)
	require.NoError(t, err)
	assert.False(t, found, "una clave nunca escrita debe reportar ausencia")
}

func TestStore_RoundTrip(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	original := []string{"uno", "dos", "tres"}
	require.NoError(t, s.Set(ctx, "lista", original))

	var leida []string
	found, err := s.Get(ctx, "lista", &leida)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original, leida)

	// El valor leído es una copia: mutarlo no afecta al almacén
	leida[0] = "mutado"
	var otra []string
	_, err = s.Get(ctx, "lista", &otra)
	require.NoError(t, err)
	assert.Equal(t, "uno", otra[0])
}

func TestStore_RunInTxCommit(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	err := s.RunInTx(ctx, func(tx storage.KVStore) error {
		if err := tx.Set(ctx, "a", 1); err != nil {
			return err
		}
		return tx.Set(ctx, "b", 2)
	})
	require.NoError(t, err)

	var a, b int
	found, err := s.Get(ctx, "a", &a)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, a)

	found, err = s.Get(ctx, "b", &b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, b)
}

func TestStore_RunInTxRollback(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", 1))

	boom := errors.New("falla a mitad de la cascada")
	err := s.RunInTx(ctx, func(tx storage.KVStore) error {
		if err := tx.Set(ctx, "a", 99); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// La escritura en staging nunca llegó al almacén
	var a int
	found, err := s.Get(ctx, "a", &a)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, a)
}

func TestStore_TxLeeSusPropiasEscrituras(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "contador", 10))

	err := s.RunInTx(ctx, func(tx storage.KVStore) error {
		var n int
		if _, err := tx.Get(ctx, "contador", &n); err != nil {
			return err
		}
		if err := tx.Set(ctx, "contador", n+1); err != nil {
			return err
		}
		// La lectura dentro de la tx ve el valor en staging
		var otra int
		if _, err := tx.Get(ctx, "contador", &otra); err != nil {
			return err
		}
		assert.Equal(t, 11, otra)
		return nil
	})
	require.NoError(t, err)

	var final int
	_, err = s.Get(ctx, "contador", &final)
	require.NoError(t, err)
	assert.Equal(t, 11, final)
}
