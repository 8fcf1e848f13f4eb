package redis

import (
	"testing"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestClave(t *testing.T) {
	assert.Equal(t, "tarea:abc-123", clave("abc-123"))
}

func TestHashRoundTrip(t *testing.T) {
	tarea := entity.Tarea{
		ID:            "6f1e2d3c-0000-4000-8000-000000000000",
		Titulo:        "Comprar leche",
		Descripcion:   "Entera, dos litros",
		Fecha:         "2030-06-15T10:30:00Z",
		Estado:        entity.EstadoEnProgreso,
		CreadoEn:      "2026-08-23T10:00:00Z",
		ActualizadoEn: "2026-08-23T10:00:00Z",
	}

	assert.Equal(t, tarea, tareaFromHash(hashFromTarea(tarea)))
}

func TestHashFromTareaKeepsEmptyFields(t *testing.T) {
	// An empty descripcion must land in the hash so a later merge can see it.
	campos := hashFromTarea(entity.Tarea{ID: "x", Titulo: "t", Estado: entity.EstadoPendiente})

	v, ok := campos["descripcion"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Len(t, campos, 7)
}

func TestTareaFromHashMissingFields(t *testing.T) {
	tarea := tareaFromHash(map[string]string{
		"id":     "x",
		"titulo": "t",
	})

	assert.Equal(t, "x", tarea.ID)
	assert.Equal(t, "t", tarea.Titulo)
	assert.Equal(t, "", tarea.Descripcion)
	assert.Equal(t, entity.Estado(""), tarea.Estado)
}
