package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID id con prefijo, milisegundos de época y un sufijo aleatorio corto.
// El componente temporal mantiene los ids ordenables por creación.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func today() string {
	return time.Now().Format("2006-01-02")
}
