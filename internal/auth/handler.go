package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"github.com/stevehoober254/social-feed-backend/internal/config"
	"github.com/stevehoober254/social-feed-backend/internal/user"
)

// Handler délègue l'inscription et la connexion au service
// d'authentification hébergé, puis maintient la table utilisateurs locale.
type Handler struct {
	users  *user.Repository
	cfg    config.AuthConfig
	client *resty.Client
}

func NewHandler(users *user.Repository, cfg config.AuthConfig) *Handler {
	return &Handler{
		users:  users,
		cfg:    cfg,
		client: resty.New(),
	}
}

// Signup POST /auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Requête invalide"})
		return
	}

	if input.Email == "" || input.Password == "" || input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Champs requis manquants"})
		return
	}

	// Vérification que email et username n'existent pas
	if h.users.ExistsByEmail(input.Email) {
		c.JSON(http.StatusConflict, gin.H{"detail": "Email déjà utilisé"})
		return
	}
	if h.users.ExistsByUsername(input.Username) {
		c.JSON(http.StatusConflict, gin.H{"detail": "Nom d'utilisateur déjà utilisé"})
		return
	}

	// Étape 1 – Création des identifiants côté service d'authentification
	resp, err := h.client.R().
		SetHeader("apikey", h.cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":    input.Email,
			"password": input.Password,
		}).
		Post(h.cfg.BaseURL + "/auth/v1/signup")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur service d'authentification"})
		return
	}
	if resp.IsError() {
		c.JSON(resp.StatusCode(), gin.H{"detail": "Erreur Auth", "details": resp.String()})
		return
	}

	// Étape 2 – Extraire le user.id
	var authResp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur parsing user.id"})
		return
	}
	if authResp.User.ID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Aucun ID utilisateur renvoyé"})
		return
	}

	// Étape 3 – Créer l'utilisateur dans la table locale
	newUser := user.User{
		ID:        authResp.User.ID,
		CreatedAt: time.Now(),
		Username:  input.Username,
		Email:     input.Email,
	}
	if err := h.users.Create(&newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur insertion base utilisateurs"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur inscrit",
		"user":    newUser,
	})
}

// Login POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var body map[string]string
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Requête invalide"})
		return
	}

	resp, err := h.client.R().
		SetHeader("apikey", h.cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(h.cfg.BaseURL + "/auth/v1/token?grant_type=password")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur service d'authentification"})
		return
	}

	c.Data(resp.StatusCode(), "application/json", resp.Body())
}

// Me GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	u, err := h.users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Utilisateur non trouvé"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}})
}
