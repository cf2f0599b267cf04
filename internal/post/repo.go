package post

import (
	"errors"

	"gorm.io/gorm"
)

// Repository : persistance de l'entité Post. Ne fait aucun contrôle
// d'autorisation, c'est au workflow appelant de l'avoir fait.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(p *Post) (*Post, error) {
	if err := r.db.Create(p).Error; err != nil {
		return nil, &PersistenceError{Op: "insert", Err: err}
	}
	return p, nil
}

// ListAll : instantané de tous les posts, du plus récent au plus ancien.
// L'id départage les égalités de created_at pour garder un ordre stable.
func (r *Repository) ListAll() ([]Post, error) {
	var posts []Post
	if err := r.db.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return posts, nil
}

func (r *Repository) FindByID(id string) (*Post, error) {
	var p Post
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	return &p, nil
}

func (r *Repository) Delete(p *Post) error {
	if err := r.db.Delete(p).Error; err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
