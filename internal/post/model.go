package post

import (
	"strings"
	"time"
)

// Types de fichier acceptés pour un post.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"` // UUID généré à la création
	UserID    string    `json:"user_id"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	FileType  string    `json:"file_type"`
	FileName  string    `json:"file_name"` // identifiant attribué par le service d'hébergement, clé de suppression
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// FileTypeFromMime : "video" si le type MIME déclaré est video/*, sinon "image".
func FileTypeFromMime(mimeType string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return FileTypeVideo
	}
	return FileTypeImage
}
