package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KarpovAlexandrGo/tareas-service/internal/entity"
	"github.com/KarpovAlexandrGo/tareas-service/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const columnas = "id, titulo, descripcion, fecha, estado, creado_en, actualizado_en"

// TareaRepository is the SQL-backed alternative to the redis store: one row
// per task in the tareas table, keyed by id. Timestamps and fecha are kept as
// the ISO 8601 strings the record carries.
type TareaRepository struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewTareaRepository(db *pgxpool.Pool) *TareaRepository {
	return &TareaRepository{
		db:     db,
		logger: logger.Log,
	}
}

func (r *TareaRepository) Get(ctx context.Context, id string) (entity.Tarea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT ` + columnas + ` FROM tareas WHERE id = $1`

	tarea, err := scanTarea(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Tarea{}, entity.ErrTareaNoEncontrada
		}
		r.logger.WithFields(logrus.Fields{
			"method":   "Get",
			"tarea_id": id,
		}).WithError(err).Error("Failed to get tarea")
		return entity.Tarea{}, entity.NewStoreError("get", err)
	}

	return tarea, nil
}

func (r *TareaRepository) Insert(ctx context.Context, tarea entity.Tarea) (entity.Tarea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO tareas (` + columnas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columnas

	insertada, err := scanTarea(r.db.QueryRow(ctx, query,
		tarea.ID,
		tarea.Titulo,
		tarea.Descripcion,
		tarea.Fecha,
		string(tarea.Estado),
		tarea.CreadoEn,
		tarea.ActualizadoEn,
	))
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Insert",
			"tarea_id": tarea.ID,
		}).WithError(err).Error("Failed to insert tarea")
		return entity.Tarea{}, entity.NewStoreError("insert", err)
	}

	return insertada, nil
}

func (r *TareaRepository) MergeUpdate(ctx context.Context, id string, patch entity.TareaPatch) (entity.Tarea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query, args := buildMergeUpdate(id, patch, entity.AhoraISO8601())

	tarea, err := scanTarea(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Tarea{}, entity.ErrTareaNoEncontrada
		}
		r.logger.WithFields(logrus.Fields{
			"method":   "MergeUpdate",
			"tarea_id": id,
		}).WithError(err).Error("Failed to update tarea")
		return entity.Tarea{}, entity.NewStoreError("merge-update", err)
	}

	return tarea, nil
}

// buildMergeUpdate produces an UPDATE touching exactly the patched columns
// plus actualizado_en, returning the full post-update row.
func buildMergeUpdate(id string, patch entity.TareaPatch, actualizadoEn string) (string, []any) {
	set := []string{"actualizado_en = $2"}
	args := []any{id, actualizadoEn}

	add := func(columna, valor string) {
		args = append(args, valor)
		set = append(set, fmt.Sprintf("%s = $%d", columna, len(args)))
	}

	if patch.Titulo != nil {
		add("titulo", *patch.Titulo)
	}
	if patch.Descripcion != nil {
		add("descripcion", *patch.Descripcion)
	}
	if patch.Fecha != nil {
		add("fecha", *patch.Fecha)
	}
	if patch.Estado != nil {
		add("estado", string(*patch.Estado))
	}

	query := "UPDATE tareas SET " + strings.Join(set, ", ") +
		" WHERE id = $1 RETURNING " + columnas
	return query, args
}

// Delete removes the row; deleting an absent id is not an error at this
// layer.
func (r *TareaRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.db.Exec(ctx, `DELETE FROM tareas WHERE id = $1`, id); err != nil {
		r.logger.WithFields(logrus.Fields{
			"method":   "Delete",
			"tarea_id": id,
		}).WithError(err).Error("Failed to delete tarea")
		return entity.NewStoreError("delete", err)
	}
	return nil
}

func (r *TareaRepository) List(ctx context.Context, limite int) ([]entity.Tarea, error) {
	query := `SELECT ` + columnas + ` FROM tareas`
	args := []any{}
	if limite > 0 {
		query += ` LIMIT $1`
		args = append(args, limite)
	}
	return r.list(ctx, "List", query, args...)
}

func (r *TareaRepository) ListByEstado(ctx context.Context, estado entity.Estado, limite int) ([]entity.Tarea, error) {
	query := `SELECT ` + columnas + ` FROM tareas WHERE estado = $1`
	args := []any{string(estado)}
	if limite > 0 {
		query += ` LIMIT $2`
		args = append(args, limite)
	}
	return r.list(ctx, "ListByEstado", query, args...)
}

func (r *TareaRepository) list(ctx context.Context, method, query string, args ...any) ([]entity.Tarea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.WithField("method", method).WithError(err).Error("Failed to list tareas")
		return nil, entity.NewStoreError("list", err)
	}
	defer rows.Close()

	tareas := make([]entity.Tarea, 0)
	for rows.Next() {
		tarea, err := scanTarea(rows)
		if err != nil {
			r.logger.WithField("method", method).WithError(err).Error("Failed to scan tarea row")
			return nil, entity.NewStoreError("list", err)
		}
		tareas = append(tareas, tarea)
	}
	if err := rows.Err(); err != nil {
		r.logger.WithField("method", method).WithError(err).Error("Error after scanning rows")
		return nil, entity.NewStoreError("list", err)
	}

	return tareas, nil
}

func scanTarea(row pgx.Row) (entity.Tarea, error) {
	var tarea entity.Tarea
	var estado string
	err := row.Scan(
		&tarea.ID,
		&tarea.Titulo,
		&tarea.Descripcion,
		&tarea.Fecha,
		&estado,
		&tarea.CreadoEn,
		&tarea.ActualizadoEn,
	)
	if err != nil {
		return entity.Tarea{}, err
	}
	tarea.Estado = entity.Estado(estado)
	return tarea, nil
}
