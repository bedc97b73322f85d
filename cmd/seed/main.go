// seed genera el juego de datos de muestra y lo escribe en un almacén de
// archivo JSON, listo para servirlo con cmd/api usando STORE_DRIVER=file.
//
// Uso: go run ./cmd/seed [-out data/dss.json] [-seed 42] [-force]
// Con -seed distinto de cero el dataset es reproducible; -force descarta el
// archivo existente antes de sembrar.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/seed"
	storagefile "github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/file"
)

func main() {
	out := flag.String("out", "data/dss.json", "ruta del documento JSON de salida")
	seedVal := flag.Int64("seed", 0, "semilla del generador (0 = reloj)")
	force := flag.Bool("force", false, "descartar el archivo existente antes de sembrar")
	flag.Parse()

	if *force {
		if err := os.Remove(*out); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "descartar %s: %v\n", *out, err)
			os.Exit(1)
		}
	}

	store, err := storagefile.Open(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir %s: %v\n", *out, err)
		os.Exit(1)
	}

	gen := seed.NewGenerator(*seedVal, time.Now())
	if err := seed.EnsureSeeded(context.Background(), store, gen.Dataset(), nil); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("dataset sembrado en %s\n", *out)
}
