package postgres

import (
	"testing"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildMergeUpdate(t *testing.T) {
	titulo := "Nuevo título"
	descripcion := ""
	fecha := "2030-06-15T10:30:00Z"
	estado := entity.EstadoCompletada

	tests := []struct {
		name      string
		patch     entity.TareaPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:  "empty patch still touches actualizado_en",
			patch: entity.TareaPatch{},
			wantQuery: "UPDATE tareas SET actualizado_en = $2" +
				" WHERE id = $1 RETURNING " + columnas,
			wantArgs: []any{"id-1", "2026-08-23T12:00:00Z"},
		},
		{
			name:  "single field",
			patch: entity.TareaPatch{Estado: &estado},
			wantQuery: "UPDATE tareas SET actualizado_en = $2, estado = $3" +
				" WHERE id = $1 RETURNING " + columnas,
			wantArgs: []any{"id-1", "2026-08-23T12:00:00Z", "COMPLETADA"},
		},
		{
			name: "all fields in fixed column order",
			patch: entity.TareaPatch{
				Titulo:      &titulo,
				Descripcion: &descripcion,
				Fecha:       &fecha,
				Estado:      &estado,
			},
			wantQuery: "UPDATE tareas SET actualizado_en = $2, titulo = $3, descripcion = $4, fecha = $5, estado = $6" +
				" WHERE id = $1 RETURNING " + columnas,
			wantArgs: []any{"id-1", "2026-08-23T12:00:00Z", "Nuevo título", "", "2030-06-15T10:30:00Z", "COMPLETADA"},
		},
		{
			name:  "explicitly empty descripcion is written",
			patch: entity.TareaPatch{Descripcion: &descripcion},
			wantQuery: "UPDATE tareas SET actualizado_en = $2, descripcion = $3" +
				" WHERE id = $1 RETURNING " + columnas,
			wantArgs: []any{"id-1", "2026-08-23T12:00:00Z", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildMergeUpdate("id-1", tt.patch, "2026-08-23T12:00:00Z")
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
