package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "tourism/internal/config"
	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database is not connected"}
	}

	var u models.User
	err := db.QueryRow(`
		SELECT id, full_name, email, password_hash, COALESCE(role,'USER'), created_at
		FROM users
		WHERE email=?
		LIMIT 1`, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database is not connected"}
	}

	var u models.User
	err := db.QueryRow(`
		SELECT id, full_name, email, password_hash, COALESCE(role,'USER'), created_at
		FROM users
		WHERE id=?
		LIMIT 1`, id).Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

// Insert creates a new account. Email uniqueness is enforced by the schema.
func (r UserRepository) Insert(u models.User) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "database is not connected"}
	}

	role := u.Role
	if role == "" {
		role = models.RoleUser
	}

	res, err := db.Exec(`
		INSERT INTO users (full_name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		strings.TrimSpace(u.FullName), strings.TrimSpace(strings.ToLower(u.Email)), u.PasswordHash, role,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
		return models.User{}, domain.InternalError{Msg: "failed to save user", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to read user id", Err: err}
	}
	u.ID = id
	u.Role = role
	return u, nil
}

func (r UserRepository) UpdatePasswordHash(id int64, hash string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid user id"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database is not connected"}
	}
	_, err := db.Exec(`UPDATE users SET password_hash=? WHERE id=?`, hash, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to update password", Err: err}
	}
	return nil
}
