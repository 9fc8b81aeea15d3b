package articles

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// RegisterArticleRoutes mounts the article endpoints. Reads are public;
// writes sit behind the protected middleware.
func RegisterArticleRoutes[T any](app router.Router[T], protected router.MiddlewareFunc, opts ...ArticleControllerOption) {

	controller := NewArticleController(opts...)

	app.Get("/articles", controller.Index).
		SetName("articles.index")

	app.Get("/articles/:id", controller.Show).
		SetName("articles.show")

	app.Post("/articles", controller.Create, protected).
		SetName("articles.create")

	app.Put("/articles/:id", controller.Update, protected).
		SetName("articles.update")
}

type ArticleController struct {
	Logger       Logger
	Repo         RepositoryManager
	Auth         Authenticator
	ContextKey   string
	ErrorHandler router.ErrorHandler
}

type ArticleControllerOption func(*ArticleController) *ArticleController

func NewArticleController(opts ...ArticleControllerOption) *ArticleController {
	c := &ArticleController{
		Logger:       defLogger{},
		ErrorHandler: apiErrHandler,
		ContextKey:   "user",
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in article controller...")
	}

	if c.Auth == nil {
		panic("Missing Authenticator in article controller...")
	}

	return c
}

func (a *ArticleController) WithLogger(logger Logger) *ArticleController {
	a.Logger = logger
	return a
}

// CreateArticlePayload is the article creation payload
type CreateArticlePayload struct {
	Title string `form:"title" json:"title"`
	Text  string `form:"text" json:"text"`
}

// Validate will run validation rules
func (r CreateArticlePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Text, validation.Required),
	)
}

// UpdateArticlePayload is the article update payload
type UpdateArticlePayload struct {
	Title string `form:"title" json:"title"`
	Text  string `form:"text" json:"text"`
}

// Validate will run validation rules
func (r UpdateArticlePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Text, validation.Required),
	)
}

func (a *ArticleController) Index(ctx router.Context) error {
	records, err := a.Repo.Articles().ListAll(ctx.Context())
	if err != nil {
		a.Logger.Error("article list error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, records)
}

func (a *ArticleController) Show(ctx router.Context) error {
	id := ctx.Param("id", "")

	record, err := a.Repo.Articles().Find(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.JSON(router.StatusNotFound, router.ViewContext{
				"error":     ErrNotFound.Message,
				"text_code": ErrNotFound.TextCode,
			})
		}
		a.Logger.Error("article show error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, record)
}

func (a *ArticleController) Create(ctx router.Context) error {
	claims, err := ClaimsFromRouterContext(ctx, a.ContextKey)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	payload := new(CreateArticlePayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("article create parse payload: ", "error", err)
		return ctx.JSON(router.StatusBadRequest, router.ViewContext{
			"error": "Error parsing body",
		})
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, router.ViewContext{
			"error": err.Error(),
		})
	}

	authorID, err := uuid.Parse(claims.UserID())
	if err != nil {
		return a.ErrorHandler(ctx, ErrUnableToMapClaims)
	}

	record := &Article{
		ID:       uuid.New(),
		Title:    payload.Title,
		Text:     payload.Text,
		AuthorID: authorID,
	}

	record, err = a.Repo.Articles().Create(ctx.Context(), record)
	if err != nil {
		a.Logger.Error("article create error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusCreated, record)
}

// Update replaces the title and text of an article. Only the author or an
// admin may do so.
func (a *ArticleController) Update(ctx router.Context) error {
	claims, err := ClaimsFromRouterContext(ctx, a.ContextKey)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	id := ctx.Param("id", "")

	record, err := a.Repo.Articles().Find(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.JSON(router.StatusNotFound, router.ViewContext{
				"error":     ErrNotFound.Message,
				"text_code": ErrNotFound.TextCode,
			})
		}
		a.Logger.Error("article update lookup error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	if ok, err := a.canEdit(ctx, claims, record); err != nil {
		a.Logger.Error("article update permission error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	} else if !ok {
		return ctx.JSON(router.StatusForbidden, router.ViewContext{
			"error":     ErrPermissionDenied.Message,
			"text_code": ErrPermissionDenied.TextCode,
		})
	}

	payload := new(UpdateArticlePayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("article update parse payload: ", "error", err)
		return ctx.JSON(router.StatusBadRequest, router.ViewContext{
			"error": "Error parsing body",
		})
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, router.ViewContext{
			"error": err.Error(),
		})
	}

	record.Title = payload.Title
	record.Text = payload.Text

	record, err = a.Repo.Articles().Update(ctx.Context(), record)
	if err != nil {
		a.Logger.Error("article update error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, record)
}

func (a *ArticleController) canEdit(ctx router.Context, claims *TokenClaims, record *Article) (bool, error) {
	if claims.UserID() == record.AuthorID.String() {
		return true, nil
	}

	return a.Auth.IsAdmin(ctx.Context(), claims.UserID())
}
