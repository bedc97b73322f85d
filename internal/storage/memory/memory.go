// Package memory implementa el KVStore en memoria: respaldo por defecto en
// desarrollo y en tests (no requiere backend externo).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// Store almacén clave-valor en memoria. Los valores se guardan serializados
// como JSON, igual que en los drivers durables, de modo que las lecturas
// devuelven siempre copias y nadie muta el estado interno por referencia.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // serializa transacciones: evita carreras read-modify-write entre cascadas
	data map[string]json.RawMessage
}

var _ storage.TxStore = (*Store)(nil)

// New construye un almacén vacío.
func New() *Store {
	return &Store{data: make(map[string]json.RawMessage)}
}

// Get deserializa el valor de key en dest. Devuelve false sin error si la
// clave no existe.
func (s *Store) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value y lo guarda bajo key.
func (s *Store) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// RunInTx ejecuta fn sobre un overlay de escrituras: los Set dentro de fn
// quedan en staging y se aplican al almacén solo si fn retorna nil. Un
// mutex dedicado serializa las transacciones completas.
func (s *Store) RunInTx(ctx context.Context, fn func(tx storage.KVStore) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &overlay{base: s, staged: make(map[string]json.RawMessage)}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	for k, v := range tx.staged {
		s.data[k] = v
	}
	s.mu.Unlock()
	return nil
}

// overlay KVStore transaccional: lee primero el staging y luego el base;
// escribe solo en staging.
type overlay struct {
	base   *Store
	staged map[string]json.RawMessage
}

func (o *overlay) Get(ctx context.Context, key string, dest any) (bool, error) {
	if raw, ok := o.staged[key]; ok {
		if err := json.Unmarshal(raw, dest); err != nil {
			return false, fmt.Errorf("decodificar %s: %w", key, err)
		}
		return true, nil
	}
	return o.base.Get(ctx, key, dest)
}

func (o *overlay) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	o.staged[key] = raw
	return nil
}
