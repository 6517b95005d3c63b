package web

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"repaired-site/internal/contact"
	"repaired-site/internal/logos"
	"repaired-site/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	msgContactReceived = "Message received! We will contact you shortly."
	msgContactMissing  = "All fields are required"
	msgContactTooLong  = "One or more fields are too long"
)

// LogoService is the part of the logo service the pages use.
type LogoService interface {
	List(ctx context.Context) ([]logos.Logo, error)
	ListActive(ctx context.Context) ([]logos.Logo, error)
	Create(ctx context.Context, req logos.CreateRequest) (logos.Logo, error)
	Update(ctx context.Context, id int64, req logos.UpdateRequest) (logos.Logo, error)
	Delete(ctx context.Context, id int64) error
}

type ContactService interface {
	Submit(req contact.Request) (contact.Request, error)
	ForwardAsync(msg contact.Request, log *slog.Logger)
}

// Handler serves the server-rendered pages: landing, sign-in mock and the
// logo admin console.
type Handler struct {
	logos   LogoService
	contact ContactService
	render  *renderer
	log     *slog.Logger
}

func NewHandler(logoService LogoService, contactService ContactService, log *slog.Logger) (*Handler, error) {
	rd, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{
		logos:   logoService,
		contact: contactService,
		render:  rd,
		log:     log,
	}, nil
}

// Routes mounts the pages on r. contactMW wraps the landing contact form
// post, typically with a rate limiter.
func (h *Handler) Routes(r chi.Router, contactMW ...func(http.Handler) http.Handler) {
	r.Get("/", h.Home)
	r.With(contactMW...).Post("/contact", h.Contact)
	r.Get("/theme/toggle", h.ToggleTheme)
	r.Get("/auth", h.Auth)
	r.Post("/auth", h.SignIn)
	r.Route("/admin/logos", func(admin chi.Router) {
		admin.Get("/", h.AdminList)
		admin.Post("/", h.AdminCreate)
		admin.Post("/{id}", h.AdminUpdate)
		admin.Post("/{id}/delete", h.AdminDelete)
	})
	r.Handle("/static/*", StaticHandler())
}

type carouselItem struct {
	Name string
	Src  string
	Alt  string
}

type carousel struct {
	Unavailable bool
	Items       []carouselItem
}

// buildCarousel turns the active logos into the rendered strip. The list is
// repeated once so the scroll animation wraps without a gap.
func buildCarousel(items []logos.Logo, err error, theme Theme) carousel {
	if err != nil {
		return carousel{Unavailable: true}
	}
	if len(items) == 0 {
		return carousel{}
	}

	out := make([]carouselItem, 0, 2*len(items))
	for pass := 0; pass < 2; pass++ {
		for _, l := range items {
			out = append(out, carouselItem{Name: l.Name, Src: l.Src(theme.Dark()), Alt: l.Alt()})
		}
	}
	return carousel{Items: out}
}

type contactForm struct {
	Values contact.Request
	Error  string
}

type homeData struct {
	Landing  Landing
	Carousel carousel
	Contact  contactForm
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, contactForm{})
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, form contactForm) {
	log := h.logWithRequest(r)
	theme := ThemeFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "carousel")
	items, err := h.logos.ListActive(ctx)
	timing.Stop()
	if err != nil {
		log.Error("home carousel: database error", slog.String("error", err.Error()))
	}

	data := homeData{
		Landing:  landing,
		Carousel: buildCarousel(items, err, theme),
		Contact:  form,
	}
	h.renderPage(w, r, status, "home", "repaired.co | AI for Re-Manufacturing", data, nil)
}

// Contact handles the landing page form when posted without script.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		log.Warn("home contact: invalid form", slog.String("error", err.Error()))
		h.renderHome(w, r, http.StatusBadRequest, contactForm{Error: msgContactMissing})
		return
	}

	req := contact.Request{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Company: r.PostFormValue("company"),
		Message: r.PostFormValue("message"),
	}
	msg, err := h.contact.Submit(req)
	if errors.Is(err, contact.ErrFieldTooLong) {
		log.Warn("home contact: field too long")
		h.renderHome(w, r, http.StatusBadRequest, contactForm{Values: req, Error: msgContactTooLong})
		return
	}
	if err != nil {
		log.Warn("home contact: missing fields")
		h.renderHome(w, r, http.StatusBadRequest, contactForm{Values: req, Error: msgContactMissing})
		return
	}

	h.contact.ForwardAsync(msg, h.log)
	log.Info("home contact: ok", slog.String("company", msg.Company))
	setFlash(w, flashSuccess, msgContactReceived)
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := ThemeFromRequest(r).Toggle()
	setTheme(w, next)
	http.Redirect(w, r, safeReturn(r.URL.Query().Get("return")), http.StatusSeeOther)
}

func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "auth", "Sign in | repaired.co", nil, nil)
}

// SignIn is a mock. Credentials are not checked.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	h.logWithRequest(r).Info("auth sign in: mock redirect")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderPage renders a full page. A nil flash means the pending flash
// cookie, if any, is shown.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}, flash *Flash) {
	if flash == nil {
		flash = popFlash(w, r)
	}

	p := page{
		Title: title,
		Theme: ThemeFromRequest(r),
		Flash: flash,
		Path:  r.URL.Path,
		Data:  data,
	}
	if err := h.render.render(w, status, name, p); err != nil {
		h.logWithRequest(r).Error("render "+name+": template error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

// StaticHandler serves the embedded stylesheet and scripts under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", noDirListing(http.FileServer(http.FS(sub))))
}

// ServeDir serves files from dir under prefix on r, for example /images.
// The path is taken from the route wildcard, so r may be a mounted
// sub-router.
func ServeDir(r chi.Router, prefix, dir string) {
	files := http.FileServer(http.Dir(dir))
	r.Get(strings.TrimRight(prefix, "/")+"/*", func(w http.ResponseWriter, req *http.Request) {
		rest := chi.URLParam(req, "*")
		if rest == "" || strings.HasSuffix(rest, "/") {
			http.NotFound(w, req)
			return
		}
		u := *req.URL
		u.Path = "/" + rest
		u.RawPath = ""
		r2 := req.Clone(req.Context())
		r2.URL = &u
		files.ServeHTTP(w, r2)
	})
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
