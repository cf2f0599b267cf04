package post

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/stevehoober254/social-feed-backend/internal/logs"
	"github.com/stevehoober254/social-feed-backend/internal/storage"
	"github.com/stevehoober254/social-feed-backend/internal/user"
)

// Options d'upload communes à tous les posts.
var uploadOptions = storage.UploadOptions{
	UniqueName: true,
	Folder:     "/uploads/",
	Tags:       []string{"backend-upload"},
}

// Workflow orchestre le cycle de vie d'un post : création (upload du média
// puis insertion), lecture du flux, suppression (contrôle de propriété,
// nettoyage distant best-effort, suppression locale).
type Workflow struct {
	repo  *Repository
	media storage.MediaStore
}

func NewWorkflow(repo *Repository, media storage.MediaStore) *Workflow {
	return &Workflow{repo: repo, media: media}
}

// FeedItem : projection d'un Post pour le flux, enrichie de champs relatifs
// au lecteur.
type FeedItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Caption   string  `json:"caption"`
	URL       string  `json:"url"`
	FileType  string  `json:"file_type"`
	FileName  string  `json:"file_name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	IsOwner   bool    `json:"is_owner"`
	Email     string  `json:"email"` // email du lecteur du flux, pas celui de l'auteur
}

// CreatePost stocke le média puis insère le post. Le flux entrant est
// d'abord copié dans un fichier temporaire, libéré quoi qu'il arrive.
func (w *Workflow) CreatePost(ctx context.Context, u *user.User, media io.Reader, fileName, mimeType, caption string) (*Post, error) {
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, fmt.Errorf("création fichier temporaire: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, media); err != nil {
		return nil, fmt.Errorf("écriture fichier temporaire: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("relecture fichier temporaire: %w", err)
	}

	res, err := w.media.Upload(ctx, tmp, fileName, mimeType, uploadOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if res.URL == "" {
		return nil, ErrUploadFailed
	}

	now := time.Now()
	newPost := &Post{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		Caption:   caption,
		URL:       res.URL,
		FileType:  FileTypeFromMime(mimeType),
		FileName:  res.FileName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := w.repo.Insert(newPost)
	if err != nil {
		// Pas de compensation : l'objet distant reste orphelin, on le signale.
		logs.LogJSON(logs.LevelWarn, "Post insert failed after upload, remote object orphaned", map[string]interface{}{
			"error":    err.Error(),
			"userID":   u.ID,
			"fileName": res.FileName,
		})
		return nil, err
	}
	return inserted, nil
}

// ListFeed : instantané du flux, du plus récent au plus ancien. Lecture
// pure, une liste vide n'est pas une erreur.
func (w *Workflow) ListFeed(u *user.User) ([]FeedItem, error) {
	posts, err := w.repo.ListAll()
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, newFeedItem(p, u))
	}
	return items, nil
}

func newFeedItem(p Post, viewer *user.User) FeedItem {
	var updated *string
	if !p.UpdatedAt.IsZero() {
		s := p.UpdatedAt.Format(time.RFC3339)
		updated = &s
	}
	return FeedItem{
		ID:        p.ID,
		UserID:    p.UserID,
		Caption:   p.Caption,
		URL:       p.URL,
		FileType:  p.FileType,
		FileName:  p.FileName,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updated,
		IsOwner:   p.UserID == viewer.ID,
		Email:     viewer.Email,
	}
}

// DeletePost supprime un post appartenant à u. La suppression distante est
// best-effort : la cohérence locale ne dépend jamais de la disponibilité du
// service d'hébergement.
func (w *Workflow) DeletePost(ctx context.Context, u *user.User, postID string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return ErrInvalidPostID
	}

	p, err := w.repo.FindByID(postID)
	if err != nil {
		return err
	}

	if p.UserID != u.ID {
		return ErrForbidden
	}

	if err := w.media.Delete(ctx, p.FileName); err != nil {
		logs.LogJSON(logs.LevelWarn, "Remote media deletion failed", map[string]interface{}{
			"error":    err.Error(),
			"userID":   u.ID,
			"postID":   p.ID,
			"fileName": p.FileName,
		})
	}

	return w.repo.Delete(p)
}
