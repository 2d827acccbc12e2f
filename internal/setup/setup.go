package setup

import (
	"time"

	"github.com/dwikurnia/forum-api/internal/config"
	"github.com/dwikurnia/forum-api/internal/handler"
	"github.com/dwikurnia/forum-api/internal/jwt"
	"github.com/dwikurnia/forum-api/internal/middleware"
	"github.com/dwikurnia/forum-api/internal/service"
	"github.com/dwikurnia/forum-api/internal/storage/pg"
	"github.com/dwikurnia/forum-api/internal/utils"
)

// Dependencies holds everything the router and main need.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, utils.NewIdGenerator())
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(
		cfg.Private.AccessTokenKey,
		cfg.Private.RefreshTokenKey,
		cfg.Public.AccessTokenTTL*time.Second,
		cfg.Public.RefreshTokenTTL*time.Second,
	)
	hasher := service.BcryptHasher{}

	threads := service.NewThread(storage, storage, storage)
	comments := service.NewComment(storage, storage)
	replies := service.NewReply(storage, storage, storage)
	likes := service.NewLike(storage, storage, storage)
	users := service.NewUser(storage, hasher)
	auth := service.NewAuth(storage, storage, hasher, jwtService)

	h := handler.New(threads, comments, replies, likes, users, auth)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
