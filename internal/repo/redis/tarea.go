package redis

import (
	"context"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/KarpovAlexandrGo/tareas-service/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// keyPrefix namespaces task hashes; one hash per task at tarea:<id>.
const keyPrefix = "tarea:"

// scanCount is the COUNT hint for SCAN pages during full-table listings.
const scanCount = 100

// TareaRepository keeps each task as a redis hash, which gives the store its
// partial-attribute write: MergeUpdate touches only the supplied fields.
// Listings are SCAN-based full-table scans with no ordering guarantee.
type TareaRepository struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewTareaRepository(client *redis.Client) *TareaRepository {
	return &TareaRepository{
		client: client,
		logger: logger.Log,
	}
}

func clave(id string) string {
	return keyPrefix + id
}

func (r *TareaRepository) Get(ctx context.Context, id string) (entity.Tarea, error) {
	valores, err := r.client.HGetAll(ctx, clave(id)).Result()
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Get",
			"tarea_id": id,
		}).WithError(err).Error("Failed to read tarea hash")
		return entity.Tarea{}, entity.NewStoreError("get", err)
	}
	if len(valores) == 0 {
		return entity.Tarea{}, entity.ErrTareaNoEncontrada
	}
	return tareaFromHash(valores), nil
}

func (r *TareaRepository) Insert(ctx context.Context, tarea entity.Tarea) (entity.Tarea, error) {
	if err := r.client.HSet(ctx, clave(tarea.ID), hashFromTarea(tarea)).Err(); err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Insert",
			"tarea_id": tarea.ID,
		}).WithError(err).Error("Failed to write tarea hash")
		return entity.Tarea{}, entity.NewStoreError("insert", err)
	}
	return tarea, nil
}

func (r *TareaRepository) MergeUpdate(ctx context.Context, id string, patch entity.TareaPatch) (entity.Tarea, error) {
	campos := patch.Campos()
	campos["actualizado_en"] = entity.AhoraISO8601()

	if err := r.client.HSet(ctx, clave(id), campos).Err(); err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "MergeUpdate",
			"tarea_id": id,
		}).WithError(err).Error("Failed to merge tarea fields")
		return entity.Tarea{}, entity.NewStoreError("merge-update", err)
	}

	return r.Get(ctx, id)
}

// Delete removes the hash. Deleting an absent key is not an error here;
// existence is the caller's concern.
func (r *TareaRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, clave(id)).Err(); err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Delete",
			"tarea_id": id,
		}).WithError(err).Error("Failed to delete tarea hash")
		return entity.NewStoreError("delete", err)
	}
	return nil
}

func (r *TareaRepository) List(ctx context.Context, limite int) ([]entity.Tarea, error) {
	return r.scan(ctx, "", limite)
}

func (r *TareaRepository) ListByEstado(ctx context.Context, estado entity.Estado, limite int) ([]entity.Tarea, error) {
	return r.scan(ctx, estado, limite)
}

// scan walks every tarea:* key, filtering on estado when one is given. The
// cap applies to matched records.
func (r *TareaRepository) scan(ctx context.Context, estado entity.Estado, limite int) ([]entity.Tarea, error) {
	tareas := make([]entity.Tarea, 0)

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		valores, err := r.client.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			r.logger.WithFields(logrus.Fields{
				"method": "scan",
				"key":    iter.Val(),
			}).WithError(err).Error("Failed to read tarea hash during scan")
			return nil, entity.NewStoreError("scan", err)
		}
		if len(valores) == 0 {
			// Key expired or deleted between SCAN and HGETALL.
			continue
		}
		tarea := tareaFromHash(valores)
		if estado != "" && tarea.Estado != estado {
			continue
		}
		tareas = append(tareas, tarea)
		if limite > 0 && len(tareas) == limite {
			return tareas, nil
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.WithField("method", "scan").WithError(err).Error("Tarea scan failed")
		return nil, entity.NewStoreError("scan", err)
	}

	return tareas, nil
}

func hashFromTarea(t entity.Tarea) map[string]string {
	return map[string]string{
		"id":             t.ID,
		"titulo":         t.Titulo,
		"descripcion":    t.Descripcion,
		"fecha":          t.Fecha,
		"estado":         string(t.Estado),
		"creado_en":      t.CreadoEn,
		"actualizado_en": t.ActualizadoEn,
	}
}

func tareaFromHash(valores map[string]string) entity.Tarea {
	return entity.Tarea{
		ID:            valores["id"],
		Titulo:        valores["titulo"],
		Descripcion:   valores["descripcion"],
		Fecha:         valores["fecha"],
		Estado:        entity.Estado(valores["estado"]),
		CreadoEn:      valores["creado_en"],
		ActualizadoEn: valores["actualizado_en"],
	}
}
