// Package storage define la fachada de persistencia del dashboard: un
// almacén clave-valor con una colección JSON por entidad bajo claves fijas
// dss-*. Los drivers (memory, file, postgres) viven en subpaquetes; los
// casos de uso reciben la interfaz y nunca un backend concreto.
package storage

import "context"

// KVStore almacén clave-valor genérico. Get deserializa el valor guardado
// en dest y reporta si la clave existe; una clave ausente no es un error.
// Set serializa value como JSON y lo guarda bajo key.
type KVStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// TxStore agrega un límite de transacción explícito sobre el KVStore: las
// escrituras hechas dentro de fn se aplican todas o ninguna. Las cascadas
// multi-entidad (venta -> cliente -> transacción, etc.) corren siempre
// dentro de RunInTx.
type TxStore interface {
	KVStore
	RunInTx(ctx context.Context, fn func(tx KVStore) error) error
}
