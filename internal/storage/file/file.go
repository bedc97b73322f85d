// Package file implementa el KVStore sobre un único documento JSON en
// disco. Pensado para uso mono-proceso: el archivo completo se reescribe en
// cada Set (escritura a temporal + rename para no dejar documentos a
// medias).
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// Store almacén clave-valor respaldado por un archivo JSON.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

var _ storage.TxStore = (*Store)(nil)

// Open carga el documento desde path (o inicia vacío si no existe).
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", path, err)
		}
	}
	return s, nil
}

// Get deserializa el valor de key en dest. Devuelve false sin error si la
// clave no existe.
func (s *Store) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set serializa value, lo guarda bajo key y persiste el documento completo.
func (s *Store) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// RunInTx ejecuta fn sobre un overlay y persiste una única vez al
// confirmar: un fallo a mitad de cascada no deja el documento inconsistente.
func (s *Store) RunInTx(_ context.Context, fn func(tx storage.KVStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &overlay{base: s.data, staged: make(map[string]json.RawMessage)}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.staged {
		s.data[k] = v
	}
	return s.flush()
}

// flush reescribe el documento. Requiere s.mu tomado.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("renombrar %s: %w", tmp, err)
	}
	return nil
}

type overlay struct {
	base   map[string]json.RawMessage
	staged map[string]json.RawMessage
}

func (o *overlay) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := o.staged[key]
	if !ok {
		raw, ok = o.base[key]
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

func (o *overlay) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	o.staged[key] = raw
	return nil
}
