package repositories

import (
	"database/sql"
	"errors"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

type CommentRepository struct {
	DB *sql.DB
}

func (r CommentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const commentColumns = `id, tour_id, user_id, full_name, content, rating, created_at`

func (r CommentRepository) Insert(cm models.Comment) (models.Comment, error) {
	db := r.db()
	if db == nil {
		return models.Comment{}, domain.InternalError{Msg: "database is not connected"}
	}

	res, err := db.Exec(`
		INSERT INTO comments (tour_id, user_id, full_name, content, rating, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		cm.TourID, cm.UserID, cm.FullName, cm.Content, cm.Rating,
	)
	if err != nil {
		return models.Comment{}, domain.InternalError{Msg: "failed to save comment", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Comment{}, domain.InternalError{Msg: "failed to read comment id", Err: err}
	}
	cm.ID = id
	return cm, nil
}

func (r CommentRepository) GetByID(id int64) (models.Comment, error) {
	if id <= 0 {
		return models.Comment{}, domain.ValidationError{Field: "id", Msg: "invalid comment id"}
	}
	db := r.db()
	if db == nil {
		return models.Comment{}, domain.InternalError{Msg: "database is not connected"}
	}

	var cm models.Comment
	err := db.QueryRow(`
		SELECT `+commentColumns+`
		FROM comments
		WHERE id=?
		LIMIT 1`, id).Scan(
		&cm.ID, &cm.TourID, &cm.UserID, &cm.FullName, &cm.Content, &cm.Rating, &cm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, domain.NotFoundError{Resource: "comment"}
		}
		return models.Comment{}, domain.InternalError{Msg: "failed to load comment", Err: err}
	}
	return cm, nil
}

// ListByTour returns a tour's comments, newest first.
func (r CommentRepository) ListByTour(tourID int64) ([]models.Comment, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database is not connected"}
	}

	rows, err := db.Query(`
		SELECT `+commentColumns+`
		FROM comments
		WHERE tour_id=?
		ORDER BY created_at DESC, id DESC`, tourID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list comments", Err: err}
	}
	defer rows.Close()

	out := []models.Comment{}
	for rows.Next() {
		var cm models.Comment
		if err := rows.Scan(
			&cm.ID, &cm.TourID, &cm.UserID, &cm.FullName, &cm.Content, &cm.Rating, &cm.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}

func (r CommentRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid comment id"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}
	_, err := db.Exec(`DELETE FROM comments WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete comment", Err: err}
	}
	return nil
}

// DeleteByTour removes all comments of a tour; used when the tour itself is
// removed.
func (r CommentRepository) DeleteByTour(tourID int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}
	_, err := db.Exec(`DELETE FROM comments WHERE tour_id=?`, tourID)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete tour comments", Err: err}
	}
	return nil
}
