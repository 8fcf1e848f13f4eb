package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/KarpovAlexandrGo/tareas-service/internal/usecase"
	"github.com/KarpovAlexandrGo/tareas-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TareaHandler translates HTTP requests into core operations and maps every
// outcome onto the response contract: 201/200 with the Spanish envelopes,
// 400 for validation and malformed input, 404 for absent records, 500 with a
// generic body for store failures.
type TareaHandler struct {
	tareaUseCase usecase.TareaUseCase
}

func NewTareaHandler(tareaUseCase usecase.TareaUseCase) *TareaHandler {
	return &TareaHandler{
		tareaUseCase: tareaUseCase,
	}
}

// RegisterRoutes mounts the tarea routes on r.
func (h *TareaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tareas", func(r chi.Router) {
		r.Post("/", h.CrearTarea)
		r.Get("/", h.ListarTareas)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.ObtenerTarea)
			r.Put("/", h.ActualizarTarea)
			r.Delete("/", h.EliminarTarea)
		})
	})
}

// RespuestaTarea is the create/update success envelope.
type RespuestaTarea struct {
	Mensaje   string       `json:"mensaje"`
	Tarea     entity.Tarea `json:"tarea"`
	Timestamp string       `json:"timestamp"`
}

// RespuestaObtener is the single-record envelope.
type RespuestaObtener struct {
	Tarea entity.Tarea `json:"tarea"`
}

// RespuestaLista is the listing envelope.
type RespuestaLista struct {
	Tareas []entity.Tarea `json:"tareas"`
	Total  int            `json:"total"`
}

// RespuestaEliminar is the delete success envelope.
type RespuestaEliminar struct {
	Mensaje   string `json:"mensaje"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// RespuestaError is the error envelope for every non-2xx outcome.
type RespuestaError struct {
	Error   string `json:"error"`
	Mensaje string `json:"mensaje"`
}

// CrearTarea handles task creation.
// @Summary      Crear tarea
// @Description  Crea una nueva tarea con los datos proporcionados
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        tarea body     map[string]interface{} true "Datos de la tarea"
// @Success      201   {object} RespuestaTarea
// @Failure      400   {object} RespuestaError
// @Failure      500   {object} RespuestaError
// @Router       /tareas [post]
func (h *TareaHandler) CrearTarea(w http.ResponseWriter, r *http.Request) {
	datos, ok := decodeBody(w, r, "Datos inválidos", "El cuerpo de la petición no es un JSON válido")
	if !ok {
		return
	}

	tarea, err := h.tareaUseCase.Crear(r.Context(), datos)
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, "Datos inválidos", ve.Mensaje)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, RespuestaTarea{
		Mensaje:   "Tarea creada correctamente",
		Tarea:     tarea,
		Timestamp: entity.AhoraISO8601(),
	})
}

// ObtenerTarea handles single-task reads.
// @Summary      Obtener tarea
// @Description  Devuelve una tarea por su ID
// @Tags         tareas
// @Produce      json
// @Param        id  path     string true "ID de la tarea (UUID)"
// @Success      200 {object} RespuestaObtener
// @Failure      400 {object} RespuestaError
// @Failure      404 {object} RespuestaError
// @Failure      500 {object} RespuestaError
// @Router       /tareas/{id} [get]
func (h *TareaHandler) ObtenerTarea(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	tarea, err := h.tareaUseCase.Obtener(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrTareaNoEncontrada) {
			respondNotFound(w, id)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, RespuestaObtener{Tarea: tarea})
}

// ListarTareas handles listings. Priority of the query parameters follows the
// contract: id first, then estado, then the unfiltered listing; limite caps
// the filtered forms.
// @Summary      Listar tareas
// @Description  Lista tareas, opcionalmente filtradas por estado o por ID
// @Tags         tareas
// @Produce      json
// @Param        id     query    string false "ID de la tarea (UUID)"
// @Param        estado query    string false "Filtro por estado" Enums(PENDIENTE, EN_PROGRESO, COMPLETADA, CANCELADA)
// @Param        limite query    int    false "Número máximo de resultados"
// @Success      200    {object} RespuestaLista
// @Failure      400    {object} RespuestaError
// @Failure      404    {object} RespuestaError
// @Failure      500    {object} RespuestaError
// @Router       /tareas [get]
func (h *TareaHandler) ListarTareas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limite := 0
	if raw := query.Get("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "Parámetro inválido",
				`El parámetro "limite" debe ser un número entero positivo`)
			return
		}
		limite = n
	}

	if id := query.Get("id"); id != "" {
		if _, ok := parseID(w, id); !ok {
			return
		}
		tarea, err := h.tareaUseCase.Obtener(r.Context(), id)
		if err != nil {
			if errors.Is(err, entity.ErrTareaNoEncontrada) {
				respondNotFound(w, id)
				return
			}
			respondInternalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, RespuestaObtener{Tarea: tarea})
		return
	}

	var tareas []entity.Tarea
	var err error
	if estado := query.Get("estado"); estado != "" {
		tareas, err = h.tareaUseCase.ListarPorEstado(r.Context(), estado, limite)
	} else {
		tareas, err = h.tareaUseCase.Listar(r.Context(), limite)
	}
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, "Parámetro inválido", ve.Mensaje)
			return
		}
		respondInternalError(w, err)
		return
	}

	if tareas == nil {
		tareas = []entity.Tarea{}
	}
	respondJSON(w, http.StatusOK, RespuestaLista{Tareas: tareas, Total: len(tareas)})
}

// ActualizarTarea handles partial updates.
// @Summary      Actualizar tarea
// @Description  Actualiza los campos proporcionados de una tarea existente
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        id    path     string                 true "ID de la tarea (UUID)"
// @Param        tarea body     map[string]interface{} true "Campos a actualizar"
// @Success      200   {object} RespuestaTarea
// @Failure      400   {object} RespuestaError
// @Failure      404   {object} RespuestaError
// @Failure      500   {object} RespuestaError
// @Router       /tareas/{id} [put]
func (h *TareaHandler) ActualizarTarea(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	// Existence is resolved before the body is even parsed; a malformed body
	// against a missing id answers 404, not 400.
	if _, err := h.tareaUseCase.Obtener(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrTareaNoEncontrada) {
			respondNotFound(w, id)
			return
		}
		respondInternalError(w, err)
		return
	}

	datos, ok := decodeBody(w, r, "Formato inválido", "El cuerpo de la petición debe ser JSON válido")
	if !ok {
		return
	}

	tarea, err := h.tareaUseCase.Actualizar(r.Context(), id, datos)
	if err != nil {
		var ve *entity.ValidationError
		switch {
		case errors.Is(err, entity.ErrTareaNoEncontrada):
			respondNotFound(w, id)
		case errors.As(err, &ve):
			respondError(w, http.StatusBadRequest, "Datos inválidos", ve.Mensaje)
		default:
			respondInternalError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, RespuestaTarea{
		Mensaje:   "Tarea actualizada correctamente",
		Tarea:     tarea,
		Timestamp: entity.AhoraISO8601(),
	})
}

// EliminarTarea handles deletion.
// @Summary      Eliminar tarea
// @Description  Elimina una tarea por su ID
// @Tags         tareas
// @Produce      json
// @Param        id  path     string true "ID de la tarea (UUID)"
// @Success      200 {object} RespuestaEliminar
// @Failure      400 {object} RespuestaError
// @Failure      404 {object} RespuestaError
// @Failure      500 {object} RespuestaError
// @Router       /tareas/{id} [delete]
func (h *TareaHandler) EliminarTarea(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.tareaUseCase.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrTareaNoEncontrada) {
			respondNotFound(w, id)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, RespuestaEliminar{
		Mensaje:   "Tarea eliminada correctamente",
		ID:        id,
		Timestamp: entity.AhoraISO8601(),
	})
}

// parseID enforces the canonical UUID form before any lookup; a malformed id
// is a 400, distinct from not-found.
func parseID(w http.ResponseWriter, id string) (string, bool) {
	if id == "" {
		respondError(w, http.StatusBadRequest, "Parámetro faltante", "El ID de la tarea es obligatorio")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		logger.Log.WithField("id", id).WithError(err).Warn("Invalid tarea ID format")
		respondError(w, http.StatusBadRequest, "Parámetro inválido",
			"El ID proporcionado no tiene formato UUID válido")
		return "", false
	}
	return id, true
}

// decodeBody parses the JSON payload; the malformed-body envelope differs
// between create and update, so the caller supplies it.
func decodeBody(w http.ResponseWriter, r *http.Request, errLabel, mensaje string) (map[string]any, bool) {
	var datos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&datos); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode request body")
		respondError(w, http.StatusBadRequest, errLabel, mensaje)
		return nil, false
	}
	return datos, true
}

func respondNotFound(w http.ResponseWriter, id string) {
	respondError(w, http.StatusNotFound, "Tarea no encontrada",
		fmt.Sprintf("No existe una tarea con el ID: %s", id))
}

// respondInternalError logs the real failure and answers with the generic
// 500 body; store detail never reaches the caller.
func respondInternalError(w http.ResponseWriter, err error) {
	logger.Log.WithError(err).Error("Unexpected error handling request")
	respondError(w, http.StatusInternalServerError, "Error interno del servidor",
		"Ha ocurrido un error al procesar la solicitud")
}

func respondError(w http.ResponseWriter, code int, errLabel, mensaje string) {
	respondJSON(w, code, RespuestaError{Error: errLabel, Mensaje: mensaje})
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
