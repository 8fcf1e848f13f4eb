package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
)

const (
	maxTituloLen      = 100
	maxDescripcionLen = 500
)

// DatosCrear is the normalized record produced by create validation, ready
// for persistence once id and timestamps are assigned.
type DatosCrear struct {
	Titulo      string
	Descripcion string
	Fecha       string
	Estado      entity.Estado
}

// ValidarDatosCrear checks and normalizes an untyped creation payload. Rules
// are applied field by field in record order (titulo, descripcion, fecha,
// estado) so the first violated rule determines the message. No side effects.
func ValidarDatosCrear(datos map[string]any) (DatosCrear, error) {
	if datos == nil {
		return DatosCrear{}, entity.NewValidationError("Los datos deben ser un objeto JSON válido")
	}

	titulo, err := validarTitulo(datos["titulo"], true)
	if err != nil {
		return DatosCrear{}, err
	}

	descripcion, err := validarDescripcion(datos["descripcion"])
	if err != nil {
		return DatosCrear{}, err
	}

	fecha, err := validarFecha(datos["fecha"], true)
	if err != nil {
		return DatosCrear{}, err
	}

	estado := entity.EstadoPendiente
	if v, ok := datos["estado"]; ok {
		estado, err = validarEstado(v)
		if err != nil {
			return DatosCrear{}, err
		}
	}

	return DatosCrear{
		Titulo:      titulo,
		Descripcion: descripcion,
		Fecha:       fecha,
		Estado:      estado,
	}, nil
}

// ValidarDatosActualizar checks a partial payload and returns the sparse set
// of fields to merge. Per-field rules match creation except that fecha has no
// lower bound here. Unrecognized keys are ignored; a payload with none of the
// recognized fields is rejected.
func ValidarDatosActualizar(datos map[string]any) (entity.TareaPatch, error) {
	if datos == nil {
		return entity.TareaPatch{}, entity.NewValidationError("Los datos deben ser un objeto JSON válido")
	}

	var patch entity.TareaPatch

	reconocido := false
	for _, campo := range []string{"titulo", "descripcion", "fecha", "estado"} {
		if _, ok := datos[campo]; ok {
			reconocido = true
			break
		}
	}
	if !reconocido {
		return entity.TareaPatch{}, entity.NewValidationError(
			"Debe proporcionar al menos un campo válido para actualizar")
	}

	if v, ok := datos["titulo"]; ok {
		titulo, err := validarTitulo(v, false)
		if err != nil {
			return entity.TareaPatch{}, err
		}
		patch.Titulo = &titulo
	}

	if v, ok := datos["descripcion"]; ok {
		descripcion, err := validarDescripcion(v)
		if err != nil {
			return entity.TareaPatch{}, err
		}
		patch.Descripcion = &descripcion
	}

	if v, ok := datos["fecha"]; ok {
		fecha, err := validarFecha(v, false)
		if err != nil {
			return entity.TareaPatch{}, err
		}
		patch.Fecha = &fecha
	}

	if v, ok := datos["estado"]; ok {
		estado, err := validarEstado(v)
		if err != nil {
			return entity.TareaPatch{}, err
		}
		patch.Estado = &estado
	}

	return patch, nil
}

func validarTitulo(v any, creacion bool) (string, error) {
	s, ok := v.(string)
	titulo := strings.TrimSpace(s)
	if !ok || titulo == "" {
		if creacion {
			return "", entity.NewValidationError("El campo 'titulo' es obligatorio y debe ser una cadena")
		}
		return "", entity.NewValidationError("El campo 'titulo' debe ser una cadena no vacía")
	}
	if utf8.RuneCountInString(titulo) > maxTituloLen {
		return "", entity.NewValidationError("El campo 'titulo' no puede superar los %d caracteres", maxTituloLen)
	}
	return titulo, nil
}

func validarDescripcion(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", entity.NewValidationError("El campo 'descripcion' debe ser una cadena")
	}
	descripcion := strings.TrimSpace(s)
	if utf8.RuneCountInString(descripcion) > maxDescripcionLen {
		return "", entity.NewValidationError("El campo 'descripcion' no puede superar los %d caracteres", maxDescripcionLen)
	}
	return descripcion, nil
}

// validarFecha keeps the client's string once it parses. The "not in the
// past" bound applies only at creation; updates accept any parseable value.
// An absent or empty fecha resolves to the current time.
func validarFecha(v any, creacion bool) (string, error) {
	if v == nil {
		return entity.AhoraISO8601(), nil
	}
	s, ok := v.(string)
	if !ok {
		return "", entity.NewValidationError("El campo 'fecha' debe tener formato ISO 8601 (YYYY-MM-DDTHH:MM:SS)")
	}
	fecha := strings.TrimSpace(s)
	if fecha == "" {
		return entity.AhoraISO8601(), nil
	}
	parsed, err := entity.ParseFecha(fecha)
	if err != nil {
		return "", entity.NewValidationError("El campo 'fecha' debe tener formato ISO 8601 (YYYY-MM-DDTHH:MM:SS)")
	}
	if creacion && parsed.Before(time.Now().UTC()) {
		return "", entity.NewValidationError("La fecha no puede ser anterior al momento actual")
	}
	return fecha, nil
}

func validarEstado(v any) (entity.Estado, error) {
	s, ok := v.(string)
	estado := entity.Estado(s)
	if !ok || !estado.Valido() {
		return "", entity.NewValidationError("El campo 'estado' debe ser uno de: %s", entity.EstadosValidos())
	}
	return estado, nil
}
