package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "scribe/internal/adapters/database"
	"scribe/internal/adapters/httpapi"
	redisadapter "scribe/internal/adapters/redis"
	"scribe/internal/adapters/storage"
	"scribe/internal/config"
	"scribe/internal/core/group"
	groupapp "scribe/internal/core/group/service"
	"scribe/internal/core/post"
	postapp "scribe/internal/core/post/service"
	"scribe/internal/core/user"
	userapp "scribe/internal/core/user/service"
	"scribe/internal/ports/pagecache"
)

func main() {
	root := &cobra.Command{
		Use:   "scribe",
		Short: "A small blogging service",
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the environment, connects the database and runs the
// schema migrations every command needs.
func bootstrap() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := autoMigrate(); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")
}

func autoMigrate() error {
	return config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
	)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap()
			config.InitRedis()
			defer closeResources(config.Logger)

			userRepo := dbadapter.NewUserRepositoryDatabase()
			groupRepo := dbadapter.NewGroupRepositoryDatabase()
			postRepo := dbadapter.NewPostRepositoryDatabase()
			images := storage.NewImageStoreDisk(config.MediaRoot())

			var cache pagecache.PageCache
			if config.RedisClient != nil {
				cache = redisadapter.NewPageCacheRedis(config.RedisClient)
			}

			userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
			groupSvc := groupapp.NewGroupService(groupRepo)
			postSvc := postapp.NewPostService(postRepo, groupRepo, userRepo, cache)

			r := httpapi.SetupRoutes(userSvc, postSvc, groupSvc, images, cache, "templates/*.html")
			r.Static("/media", config.MediaRoot())

			port := os.Getenv("APP_PORT")
			if port == "" {
				port = "8080"
			}

			config.Logger.Info("App is running", zap.String("port", port))
			return r.Run(":" + port)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		Run: func(cmd *cobra.Command, args []string) {
			bootstrap()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo users, groups and posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap()

			userRepo := dbadapter.NewUserRepositoryDatabase()
			groupRepo := dbadapter.NewGroupRepositoryDatabase()
			postRepo := dbadapter.NewPostRepositoryDatabase()

			userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
			groupSvc := groupapp.NewGroupService(groupRepo)
			postSvc := postapp.NewPostService(postRepo, groupRepo, userRepo, nil)

			return seed(cmd.Context(), userSvc, groupSvc, postSvc)
		},
	}
}

func seed(ctx context.Context, userSvc *userapp.UserService, groupSvc *groupapp.GroupService, postSvc *postapp.PostService) error {
	const postsPerUser = 5

	g, err := groupSvc.CreateGroup(ctx, "General", "general", "Anything goes")
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		username := fmt.Sprintf("demo%d", i)
		u, err := userSvc.RegisterUser(ctx, username, "password")
		if err != nil {
			config.Logger.Error("Error creating user", zap.String("username", username), zap.Error(err))
			continue
		}

		for p := 1; p <= postsPerUser; p++ {
			form := &post.Form{Text: fmt.Sprintf("Post %d by %s", p, username)}
			if p%2 == 0 {
				form.GroupID = g.ID
			}
			if _, err := postSvc.CreatePost(ctx, form, u.ID); err != nil {
				config.Logger.Error("Error creating post", zap.String("username", username), zap.Error(err))
			}
		}
	}

	config.Logger.Info("Seed data created")
	return nil
}

func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
