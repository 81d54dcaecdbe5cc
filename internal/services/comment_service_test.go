package services

import (
	"database/sql"
	"strings"
	"testing"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func commentServiceWith(db *sql.DB) CommentService {
	return CommentService{
		Repo:     repositories.CommentRepository{DB: db},
		TourRepo: repositories.TourRepository{DB: db},
	}
}

func TestCommentCreateValidation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := commentServiceWith(db)

	cases := []struct {
		name string
		in   models.Comment
	}{
		{"missing content", models.Comment{TourID: 3, Rating: 4}},
		{"blank content", models.Comment{TourID: 3, Rating: 4, Content: "   "}},
		{"content too long", models.Comment{TourID: 3, Rating: 4, Content: strings.Repeat("x", 1001)}},
		{"rating zero", models.Comment{TourID: 3, Rating: 0, Content: "Lovely trip"}},
		{"rating six", models.Comment{TourID: 3, Rating: 6, Content: "Lovely trip"}},
		{"rating negative", models.Comment{TourID: 3, Rating: -1, Content: "Lovely trip"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.in); !domain.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
	// None of the rejects may touch storage.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validation failures must not hit the database: %v", err)
	}
}

func TestCommentCreateUnknownTour(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	svc := commentServiceWith(db)
	_, err := svc.Create(models.Comment{TourID: 99, Rating: 4, Content: "Lovely trip"})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestCommentCreatePersists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnRows(tourRows())
	mock.ExpectExec(`INSERT INTO comments`).
		WithArgs(int64(3), int64(9), "Asha Rao", "Lovely trip, great guide", 5).
		WillReturnResult(sqlmock.NewResult(12, 1))

	svc := commentServiceWith(db)
	saved, err := svc.Create(models.Comment{
		TourID:   3,
		UserID:   9,
		FullName: "Asha Rao",
		Content:  "  Lovely trip, great guide  ",
		Rating:   5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if saved.ID != 12 {
		t.Fatalf("id = %d, want 12", saved.ID)
	}
	if saved.Content != "Lovely trip, great guide" {
		t.Fatalf("content not trimmed: %q", saved.Content)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCommentListByTourRejectsBadID(t *testing.T) {
	svc := CommentService{}
	if _, err := svc.ListByTour(0); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

// Deleting a tour takes its reviews with it.
func TestTourDeleteCleansComments(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnRows(tourRows())
	mock.ExpectExec(`DELETE FROM comments WHERE tour_id=\?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM tours WHERE id=\?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := TourService{
		Repo:     repositories.TourRepository{DB: db},
		Comments: repositories.CommentRepository{DB: db},
		Now:      fixedClock,
	}
	if err := svc.Delete(3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTourDeleteUnknown(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM tours WHERE id=\?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	svc := TourService{
		Repo:     repositories.TourRepository{DB: db},
		Comments: repositories.CommentRepository{DB: db},
	}
	if err := svc.Delete(99); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}
