// Package config carga la configuración de la aplicación vía Viper desde
// variables de entorno y, opcionalmente, un archivo .env.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	Seed  SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selección del backend de persistencia.
type StoreConfig struct {
	Driver      string // memory | file | postgres
	Path        string // driver file: ruta del documento JSON
	DatabaseURL string // driver postgres: DSN completo
}

// SeedConfig control del generador de datos de muestra.
type SeedConfig struct {
	// Random semilla del PRNG del generador. 0 = derivada del reloj (cada
	// arranque produce un dataset distinto); cualquier otro valor produce
	// datasets reproducibles.
	Random int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde un archivo .env en el directorio actual). Las env vars tienen
// prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sistema-rrhh-dds"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver:      getString(v, "STORE_DRIVER", StoreDriverFile),
			Path:        getString(v, "STORE_PATH", "data/dss.json"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		Seed: SeedConfig{
			Random: int64(getInt(v, "SEED", 0)),
		},
	}

	switch cfg.Store.Driver {
	case StoreDriverMemory, StoreDriverFile:
	case StoreDriverPostgres:
		if cfg.Store.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=postgres requiere DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
