package post

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stevehoober254/social-feed-backend/internal/logs"
	"github.com/stevehoober254/social-feed-backend/internal/user"
)

// Handler expose le workflow sur HTTP. Les erreurs métier sont traduites en
// statuts distincts, le détail des fautes serveur reste dans les logs.
type Handler struct {
	workflow *Workflow
	users    *user.Repository
}

func NewHandler(workflow *Workflow, users *user.Repository) *Handler {
	return &Handler{workflow: workflow, users: users}
}

func (h *Handler) currentUser(c *gin.Context) (*user.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Utilisateur non authentifié"})
		return nil, false
	}

	u, err := h.users.FindByID(userID.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Utilisateur non trouvé"})
		return nil, false
	}
	return u, true
}

// CreatePost POST /posts
func (h *Handler) CreatePost(c *gin.Context) {
	route := c.FullPath()

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	caption := c.PostForm("caption")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Aucun fichier fourni"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	created, err := h.workflow.CreatePost(c.Request.Context(), u, file, header.Filename, contentType, caption)
	if err != nil {
		status, detail := statusFromError(err)
		c.JSON(status, gin.H{"detail": detail})
		logs.LogJSON(logs.LevelError, "Post creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": u.ID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post créé avec succès",
		"post":    created,
	})
	logs.LogJSON(logs.LevelInfo, "Post created successfully", map[string]interface{}{
		"route":  route,
		"userID": u.ID,
		"extra":  fmt.Sprintf("Post created successfully : %s", created.ID),
	})
}

// ListFeed GET /posts
func (h *Handler) ListFeed(c *gin.Context) {
	route := c.FullPath()

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	items, err := h.workflow.ListFeed(u)
	if err != nil {
		status, detail := statusFromError(err)
		c.JSON(status, gin.H{"detail": detail})
		logs.LogJSON(logs.LevelError, "Feed listing failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": u.ID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": items})
}

// DeletePost DELETE /posts/:post_id
func (h *Handler) DeletePost(c *gin.Context) {
	route := c.FullPath()

	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	postID := c.Param("post_id")

	if err := h.workflow.DeletePost(c.Request.Context(), u, postID); err != nil {
		status, detail := statusFromError(err)
		c.JSON(status, gin.H{"detail": detail})
		logs.LogJSON(logs.LevelWarn, "Post deletion failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": u.ID,
			"extra":  fmt.Sprintf("Post deletion failed : %s", postID),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post supprimé avec succès"})
	logs.LogJSON(logs.LevelInfo, "Post deleted successfully", map[string]interface{}{
		"route":  route,
		"userID": u.ID,
		"extra":  fmt.Sprintf("Post deleted successfully : %s", postID),
	})
}

func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidPostID):
		return http.StatusBadRequest, "Identifiant de post invalide"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Post non trouvé"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Vous n'êtes pas autorisé à supprimer ce post"
	case errors.Is(err, ErrUploadFailed):
		return http.StatusInternalServerError, "Erreur lors de l'upload du média"
	default:
		return http.StatusInternalServerError, "Erreur interne"
	}
}
