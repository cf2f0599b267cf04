package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/stevehoober254/social-feed-backend/internal/auth"
	"github.com/stevehoober254/social-feed-backend/internal/config"
	"github.com/stevehoober254/social-feed-backend/internal/database"
	"github.com/stevehoober254/social-feed-backend/internal/middleware"
	"github.com/stevehoober254/social-feed-backend/internal/post"
	"github.com/stevehoober254/social-feed-backend/internal/storage"
	"github.com/stevehoober254/social-feed-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuration invalide: %v", err)
	}

	db, err := database.Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("base de données inaccessible: %v", err)
	}

	// Un seul client média, configuré au démarrage et injecté partout.
	mediaStore, err := storage.NewS3Client(context.Background(),
		cfg.S3.Bucket, cfg.S3.Region, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
	if err != nil {
		log.Fatalf("client S3: %v", err)
	}

	users := user.NewRepository(db)
	posts := post.NewRepository(db)
	workflow := post.NewWorkflow(posts, mediaStore)
	postHandler := post.NewHandler(workflow, users)
	authHandler := auth.NewHandler(users, cfg.Auth)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Inscription & Connexion
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/posts", postHandler.CreatePost)
	authed.GET("/posts", postHandler.ListFeed)
	authed.DELETE("/posts/:post_id", postHandler.DeletePost)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("serveur arrêté: %v", err)
	}
}
