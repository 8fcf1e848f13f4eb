package usecase

import (
	"context"
	"time"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/KarpovAlexandrGo/tareas-service/pkg/logger"
	"github.com/google/uuid"
)

// cacheTTL bounds how stale a cached unfiltered listing may get when an
// invalidation is missed.
const cacheTTL = 5 * time.Minute

// TareaUseCase is the operation surface the HTTP layer consumes. Every method
// returns either a result or one of the taxonomy errors: *entity.ValidationError,
// entity.ErrTareaNoEncontrada or *entity.StoreError.
type TareaUseCase interface {
	Crear(ctx context.Context, datos map[string]any) (entity.Tarea, error)
	Obtener(ctx context.Context, id string) (entity.Tarea, error)
	Listar(ctx context.Context, limite int) ([]entity.Tarea, error)
	ListarPorEstado(ctx context.Context, estado string, limite int) ([]entity.Tarea, error)
	Actualizar(ctx context.Context, id string, datos map[string]any) (entity.Tarea, error)
	Eliminar(ctx context.Context, id string) error
}

// TareaRepository is the single-table store keyed by id.
type TareaRepository interface {
	Get(ctx context.Context, id string) (entity.Tarea, error)
	Insert(ctx context.Context, tarea entity.Tarea) (entity.Tarea, error)
	// MergeUpdate writes exactly the fields present in patch plus
	// actualizado_en and returns the complete post-update record.
	MergeUpdate(ctx context.Context, id string, patch entity.TareaPatch) (entity.Tarea, error)
	// Delete is idempotent at the store level; existence is checked by the
	// caller beforehand.
	Delete(ctx context.Context, id string) error
	// List scans the whole table; limite of 0 means no cap. No ordering is
	// guaranteed.
	List(ctx context.Context, limite int) ([]entity.Tarea, error)
	// ListByEstado scans with an equality filter on estado; there is no
	// secondary index, the filter runs after retrieval.
	ListByEstado(ctx context.Context, estado entity.Estado, limite int) ([]entity.Tarea, error)
}

// CacheRepository caches the unfiltered listing. Failures here are logged and
// otherwise ignored; reads fall through to the store.
type CacheRepository interface {
	GetTareas(ctx context.Context) ([]entity.Tarea, error)
	SetTareas(ctx context.Context, tareas []entity.Tarea, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type TareaUseCaseImpl struct {
	tareaRepo TareaRepository
	cacheRepo CacheRepository
}

func NewTareaUseCase(tareaRepo TareaRepository, cacheRepo CacheRepository) *TareaUseCaseImpl {
	return &TareaUseCaseImpl{
		tareaRepo: tareaRepo,
		cacheRepo: cacheRepo,
	}
}

func (uc *TareaUseCaseImpl) Crear(ctx context.Context, datos map[string]any) (entity.Tarea, error) {
	validados, err := ValidarDatosCrear(datos)
	if err != nil {
		logger.Log.WithError(err).Warn("Create validation failed")
		return entity.Tarea{}, err
	}

	ahora := entity.AhoraISO8601()
	tarea := entity.Tarea{
		ID:            uuid.NewString(),
		Titulo:        validados.Titulo,
		Descripcion:   validados.Descripcion,
		Fecha:         validados.Fecha,
		Estado:        validados.Estado,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}

	creada, err := uc.tareaRepo.Insert(ctx, tarea)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert tarea")
		return entity.Tarea{}, err
	}

	uc.invalidarCache(ctx)

	logger.Log.WithField("tarea_id", creada.ID).Info("Tarea created")
	return creada, nil
}

func (uc *TareaUseCaseImpl) Obtener(ctx context.Context, id string) (entity.Tarea, error) {
	return uc.tareaRepo.Get(ctx, id)
}

func (uc *TareaUseCaseImpl) Listar(ctx context.Context, limite int) ([]entity.Tarea, error) {
	tareas, err := uc.cacheRepo.GetTareas(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Cache read failed, falling back to store")
	}
	if tareas != nil {
		return capTareas(tareas, limite), nil
	}

	tareas, err = uc.tareaRepo.List(ctx, 0)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to list tareas")
		return nil, err
	}

	if err := uc.cacheRepo.SetTareas(ctx, tareas, cacheTTL); err != nil {
		logger.Log.WithError(err).Warn("Failed to cache tarea listing")
	}

	return capTareas(tareas, limite), nil
}

func (uc *TareaUseCaseImpl) ListarPorEstado(ctx context.Context, estado string, limite int) ([]entity.Tarea, error) {
	e := entity.Estado(estado)
	if !e.Valido() {
		return nil, entity.NewValidationError("Estado no válido. Debe ser uno de: %s", entity.EstadosValidos())
	}

	tareas, err := uc.tareaRepo.ListByEstado(ctx, e, limite)
	if err != nil {
		logger.Log.WithError(err).WithField("estado", estado).Error("Failed to list tareas by estado")
		return nil, err
	}
	return tareas, nil
}

func (uc *TareaUseCaseImpl) Actualizar(ctx context.Context, id string, datos map[string]any) (entity.Tarea, error) {
	// Existence first, then field validation: a missing record answers 404
	// even when the payload is also invalid.
	if _, err := uc.tareaRepo.Get(ctx, id); err != nil {
		return entity.Tarea{}, err
	}

	patch, err := ValidarDatosActualizar(datos)
	if err != nil {
		logger.Log.WithError(err).WithField("tarea_id", id).Warn("Update validation failed")
		return entity.Tarea{}, err
	}

	actualizada, err := uc.tareaRepo.MergeUpdate(ctx, id, patch)
	if err != nil {
		logger.Log.WithError(err).WithField("tarea_id", id).Error("Failed to update tarea")
		return entity.Tarea{}, err
	}

	uc.invalidarCache(ctx)

	logger.Log.WithField("tarea_id", id).Info("Tarea updated")
	return actualizada, nil
}

func (uc *TareaUseCaseImpl) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.tareaRepo.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.tareaRepo.Delete(ctx, id); err != nil {
		logger.Log.WithError(err).WithField("tarea_id", id).Error("Failed to delete tarea")
		return err
	}

	uc.invalidarCache(ctx)

	logger.Log.WithField("tarea_id", id).Info("Tarea deleted")
	return nil
}

func (uc *TareaUseCaseImpl) invalidarCache(ctx context.Context) {
	if err := uc.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate tarea cache")
	}
}

func capTareas(tareas []entity.Tarea, limite int) []entity.Tarea {
	if limite > 0 && len(tareas) > limite {
		return tareas[:limite]
	}
	return tareas
}
