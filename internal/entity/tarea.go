package entity

import (
	"strings"
	"time"
)

// Estado is the lifecycle state of a task. The set of values is fixed; a task
// always holds exactly one of them.
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoEnProgreso Estado = "EN_PROGRESO"
	EstadoCompletada Estado = "COMPLETADA"
	EstadoCancelada  Estado = "CANCELADA"
)

var estadosValidos = []Estado{EstadoPendiente, EstadoEnProgreso, EstadoCompletada, EstadoCancelada}

// Valido reports whether e is a member of the estado enum.
func (e Estado) Valido() bool {
	for _, v := range estadosValidos {
		if e == v {
			return true
		}
	}
	return false
}

// EstadosValidos returns the enum literals joined for use in error messages.
func EstadosValidos() string {
	parts := make([]string, len(estadosValidos))
	for i, e := range estadosValidos {
		parts[i] = string(e)
	}
	return strings.Join(parts, ", ")
}

// Tarea is the persisted task record, one per id. Timestamps are ISO 8601 UTC
// strings with second precision; Fecha keeps the value the client supplied.
type Tarea struct {
	ID            string `json:"id"`
	Titulo        string `json:"titulo"`
	Descripcion   string `json:"descripcion"`
	Fecha         string `json:"fecha"`
	Estado        Estado `json:"estado"`
	CreadoEn      string `json:"creado_en"`
	ActualizadoEn string `json:"actualizado_en"`
}

// TareaPatch is the sparse field set produced by update validation. A nil
// field is left untouched by the store; ActualizadoEn is always rewritten by
// the store itself and is not part of the patch.
type TareaPatch struct {
	Titulo      *string
	Descripcion *string
	Fecha       *string
	Estado      *Estado
}

// Vacia reports whether the patch carries no fields at all.
func (p TareaPatch) Vacia() bool {
	return p.Titulo == nil && p.Descripcion == nil && p.Fecha == nil && p.Estado == nil
}

// Campos returns the present fields as column/attribute name to value pairs,
// in the record's field order.
func (p TareaPatch) Campos() map[string]string {
	campos := make(map[string]string, 4)
	if p.Titulo != nil {
		campos["titulo"] = *p.Titulo
	}
	if p.Descripcion != nil {
		campos["descripcion"] = *p.Descripcion
	}
	if p.Fecha != nil {
		campos["fecha"] = *p.Fecha
	}
	if p.Estado != nil {
		campos["estado"] = string(*p.Estado)
	}
	return campos
}

// AhoraISO8601 returns the current UTC time as an ISO 8601 string with second
// precision and a Z suffix, the format used for creado_en and actualizado_en.
func AhoraISO8601() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFecha parses an ISO 8601 date/time string. Values without a zone are
// taken as UTC.
func ParseFecha(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
