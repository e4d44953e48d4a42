package router

import (
	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/internal/container"
	pginfra "github.com/oksasatya/go-blog-clean-architecture/internal/infrastructure/postgres"
	"github.com/oksasatya/go-blog-clean-architecture/internal/infrastructure/session"
	handlers "github.com/oksasatya/go-blog-clean-architecture/internal/interface/http"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/middleware"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/view"
	"github.com/oksasatya/go-blog-clean-architecture/internal/router/modules"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// InitModules builds the services from container singletons and
// registers every feature module with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)
	flash := view.NewFlash(container.GetRedis(), cookies)
	sessions := session.NewRedisStore(container.GetRedis(), cfg.SessionTTL)

	users := pginfra.NewUserRepository(container.GetPGPool())
	posts := pginfra.NewPostRepository(container.GetPGPool())
	comments := pginfra.NewCommentRepository(container.GetPGPool())

	identity := application.NewIdentityService(users, sessions, container.GetTokens(), logger)
	content := application.NewContentService(posts, comments, logger, container.GetES(), cfg.ESPostsIndex, container.GetGCS(), cfg.GCSBucket)
	contact := application.NewContactService(container.GetRabbitPub(), cfg.ContactRecipient, logger)

	// Every route sees the resolved actor, Anonymous included.
	r.Use(middleware.ResolveActor(identity))

	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(content, flash, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(identity, cookies, flash, logger)))
	r.Add(modules.NewPagesModule(handlers.NewPagesHandler(contact, flash, logger)))
}
