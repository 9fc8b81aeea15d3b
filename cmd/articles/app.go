package main

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/config"
	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type App struct {
	config *gconfig.Container[*config.BaseConfig]
	bunDB  *bun.DB
	auth   articles.Authenticator
	auther *articles.RouteAuthenticator
	repo   articles.RepositoryManager
	srv    router.Server[*fiber.App]
	logger *glog.BaseLogger
}

func NewApp(ctx context.Context) (*App, error) {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Info),
		glog.WithName("articles"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := gconfig.New(&config.BaseConfig{}).
		WithLogger(lgr.GetLogger("config"))

	if err := cfg.Load(ctx); err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: lgr,
	}, nil
}

func (a *App) Config() *config.BaseConfig {
	return a.config.Raw()
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func WithPersistence(ctx context.Context, app *App) error {
	pcfg := app.Config().GetPersistence()

	var db *sql.DB
	var dialect schema.Dialect

	switch pcfg.GetDriver() {
	case "postgres":
		connector := pgdriver.NewConnector(pgdriver.WithDSN(pcfg.GetDSN()))
		db = sql.OpenDB(connector)
		dialect = pgdialect.New()
	default:
		var err error
		db, err = sql.Open(sqliteshim.ShimName, pcfg.GetDSN())
		if err != nil {
			return err
		}
		dialect = sqlitedialect.New()
	}

	persistence.RegisterModel((*articles.User)(nil))
	persistence.RegisterModel((*articles.Group)(nil))
	persistence.RegisterModel((*articles.GroupMembership)(nil))
	persistence.RegisterModel((*articles.Article)(nil))

	client, err := persistence.New(pcfg, db, dialect)
	if err != nil {
		return err
	}

	client.SetLogger(app.GetLogger("persistence"))

	migrationsFS, err := fs.Sub(articles.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return err
	}

	client.RegisterDialectMigrations(
		migrationsFS,
		persistence.WithDialectSourceLabel("data/sql/migrations"),
		persistence.WithValidationTargets("postgres", "sqlite"),
	)

	if err := client.Migrate(ctx); err != nil {
		return err
	}

	app.bunDB = client.DB()
	app.repo = articles.NewRepositoryManager(client.DB())

	return app.repo.Validate()
}

func WithHTTPServer(ctx context.Context, app *App) error {
	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			UnescapePath:  true,
			StrictRouting: false,
		}))
	})

	srv.Router().WithLogger(app.GetLogger("router"))

	app.srv = srv

	return nil
}

func WithHTTPAuth(ctx context.Context, app *App) error {
	cfg := app.Config().GetAuth()

	userProvider := articles.NewUserProvider(app.repo.Users()).
		WithLogger(app.GetLogger("auth:prv"))

	authenticator := articles.NewAuthenticator(userProvider, cfg).
		WithLogger(app.GetLogger("auth:authz")).
		WithGroups(app.repo.Groups())

	app.auth = authenticator

	httpAuth, err := articles.NewHTTPAuthenticator(authenticator, cfg)
	if err != nil {
		return err
	}

	httpAuth.WithLogger(app.GetLogger("auth:http"))
	app.auther = httpAuth

	articles.RegisterAuthRoutes(app.srv.Router().Group("/"),
		func(ac *articles.AuthController) *articles.AuthController {
			ac.Auth = authenticator
			ac.Repo = app.repo
			ac.WithLogger(app.GetLogger("auth:ctrl"))
			return ac
		})

	protected := httpAuth.ProtectedRoute(cfg, httpAuth.MakeAPIAuthErrorHandler())

	articles.RegisterArticleRoutes(app.srv.Router().Group("/"), protected,
		func(ac *articles.ArticleController) *articles.ArticleController {
			ac.Auth = authenticator
			ac.Repo = app.repo
			ac.ContextKey = cfg.GetContextKey()
			ac.WithLogger(app.GetLogger("articles:ctrl"))
			return ac
		})

	return nil
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
