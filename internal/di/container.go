package di

import (
	"github.com/eduhub-platform/backend/internal/handler"
	"github.com/eduhub-platform/backend/internal/repository"
	"github.com/eduhub-platform/backend/internal/service"
	"github.com/eduhub-platform/backend/internal/session"
	"github.com/eduhub-platform/backend/internal/token"
	"github.com/eduhub-platform/backend/pkg/database"
	"github.com/eduhub-platform/backend/pkg/redis"
)

// ContainerConfig holds everything the container needs to assemble the
// application graph.
type ContainerConfig struct {
	DB    *database.PostgresDB
	Mongo *database.MongoDB
	Redis *redis.Client

	JWTSecret     string
	JWTIssuer     string
	SessionConfig session.Config
	ServiceConfig *service.AuthServiceConfig
}

// Container wires repositories, services and handlers together.
type Container struct {
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	SessionRepo repository.SessionRepository

	Tokens   *token.Service
	Resolver *session.Resolver

	AuthService service.AuthService
	PostService service.PostService
	UserService service.UserService

	AuthHandler   *handler.AuthHandler
	PostHandler   *handler.PostHandler
	UserHandler   *handler.UserHandler
	HealthHandler *handler.HealthHandler
}

// NewContainer builds the dependency graph.
func NewContainer(cfg *ContainerConfig) *Container {
	userRepo := repository.NewPostgresUserRepository(cfg.DB.Pool())
	postRepo := repository.NewMongoPostRepository(cfg.Mongo.Database())
	sessionRepo := repository.NewRedisSessionRepository(cfg.Redis.Client())

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer)
	resolver := session.NewResolver(tokens, sessionRepo, userRepo, cfg.SessionConfig)

	authService := service.NewAuthService(userRepo, resolver, cfg.ServiceConfig)
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo)

	return &Container{
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		SessionRepo: sessionRepo,

		Tokens:   tokens,
		Resolver: resolver,

		AuthService: authService,
		PostService: postService,
		UserService: userService,

		AuthHandler:   handler.NewAuthHandler(authService),
		PostHandler:   handler.NewPostHandler(postService),
		UserHandler:   handler.NewUserHandler(userService),
		HealthHandler: handler.NewHealthHandler(cfg.DB, cfg.Mongo, cfg.Redis),
	}
}
