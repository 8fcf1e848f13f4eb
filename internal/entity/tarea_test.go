package entity_test

import (
	"testing"
	"time"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoValido(t *testing.T) {
	tests := []struct {
		name   string
		estado entity.Estado
		want   bool
	}{
		{"pendiente", entity.EstadoPendiente, true},
		{"en progreso", entity.EstadoEnProgreso, true},
		{"completada", entity.EstadoCompletada, true},
		{"cancelada", entity.EstadoCancelada, true},
		{"empty", entity.Estado(""), false},
		{"unknown literal", entity.Estado("INVALID"), false},
		{"lowercase", entity.Estado("pendiente"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.estado.Valido())
		})
	}
}

func TestEstadosValidos(t *testing.T) {
	assert.Equal(t, "PENDIENTE, EN_PROGRESO, COMPLETADA, CANCELADA", entity.EstadosValidos())
}

func TestAhoraISO8601(t *testing.T) {
	s := entity.AhoraISO8601()

	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, s)
	assert.Equal(t, 0, parsed.Nanosecond())
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}

func TestParseFecha(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339 with Z", "2030-06-15T10:30:00Z", false},
		{"rfc3339 with offset", "2030-06-15T10:30:00+02:00", false},
		{"naive datetime", "2030-06-15T10:30:00", false},
		{"naive with fraction", "2030-06-15T10:30:00.123456", false},
		{"date only", "2030-06-15", false},
		{"garbage", "not-a-date", true},
		{"empty", "", true},
		{"partial", "2030-06", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.ParseFecha(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFechaNaiveIsUTC(t *testing.T) {
	parsed, err := entity.ParseFecha("2030-06-15T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 15, 10, 30, 0, 0, time.UTC), parsed.UTC())
}

func TestTareaPatchVacia(t *testing.T) {
	assert.True(t, entity.TareaPatch{}.Vacia())

	titulo := "Comprar leche"
	assert.False(t, entity.TareaPatch{Titulo: &titulo}.Vacia())
}

func TestTareaPatchCampos(t *testing.T) {
	titulo := "Comprar leche"
	estado := entity.EstadoCompletada

	patch := entity.TareaPatch{Titulo: &titulo, Estado: &estado}
	campos := patch.Campos()

	assert.Equal(t, map[string]string{
		"titulo": "Comprar leche",
		"estado": "COMPLETADA",
	}, campos)
}

func TestTareaPatchCamposEmptyValues(t *testing.T) {
	// An explicitly empty descripcion must still be part of the field set.
	descripcion := ""
	patch := entity.TareaPatch{Descripcion: &descripcion}

	campos := patch.Campos()
	v, ok := campos["descripcion"]
	require.True(t, ok)
	assert.Equal(t, "", v)
}
