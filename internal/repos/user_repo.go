package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"shoply/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

// Password hashes never appear in list projections.
var userListSpec = ListSpec{
	Table:       "users",
	Columns:     []string{"id", "name", "email"},
	Fields:      map[string]bool{"name": true, "email": true},
	DefaultSort: "email",
}

func (r *UserRepo) List(p ListParams) ([]domain.UserProfile, error) {
	return List[domain.UserProfile](r.db, userListSpec, p)
}

func (r *UserRepo) Count(search string) (int, error) {
	return Count(r.db, userListSpec, search)
}

func (r *UserRepo) Get(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id, name, email, password_hash, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM users
	  WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id, name, email, password_hash, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM users
	  WHERE LOWER(email) = LOWER(?)
	`, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(id, name, email, password_hash, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, u.ID, u.Name, u.Email, u.Hash)
	return err
}

func (r *UserRepo) Update(id, name, email string) error {
	_, err := r.db.Exec(`
	  UPDATE users SET name = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, name, email, id)
	return err
}

func (r *UserRepo) UpdatePassword(id, hash string) error {
	_, err := r.db.Exec(`
	  UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, hash, id)
	return err
}

func (r *UserRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
