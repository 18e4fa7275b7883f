package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/versocms/verso/internal/icon"
	"github.com/versocms/verso/internal/platform/branding"
	"github.com/versocms/verso/internal/platform/icons"
	"github.com/versocms/verso/internal/platform/requestctx"
	"github.com/versocms/verso/internal/services/shared/htmx"
	sharedroute "github.com/versocms/verso/internal/services/shared/route"
	sharedtemplates "github.com/versocms/verso/internal/services/shared/templates"
	webi18n "github.com/versocms/verso/internal/services/web/i18n"
	"github.com/versocms/verso/internal/services/web/static"
	webtemplates "github.com/versocms/verso/internal/services/web/templates"
	webhttp "github.com/versocms/verso/internal/services/web/transport/http"
)

// featuredIconNames is the sample strip shown on the landing page.
var featuredIconNames = []string{
	"paint-brush",
	"puzzle-piece",
	"globe",
	"star",
	"heart",
	"magnifying-glass",
}

// handler routes web requests against a loaded site.
type handler struct {
	appName string
	site    *Site
}

// NewHandler builds the HTTP handler serving a loaded site.
func NewHandler(config Config, loaded *Site) (http.Handler, error) {
	if loaded == nil {
		return nil, errors.New("site is required")
	}
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handler{appName: appName, site: loaded}
	return h.routes(), nil
}

// routes wires the HTTP routes for the web handler.
func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/static/", webhttp.WithStaticMime(http.StripPrefix("/static/", http.FileServer(http.FS(static.Assets)))))
	mux.HandleFunc("/icons", h.handleIconLibrary)
	mux.HandleFunc("/icons/", h.handleIconDetail)
	mux.HandleFunc("/", h.handleHome)

	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return h.withRequestState(mux)
}

// withRequestState resolves the request language once and gives the request
// its own icon resolver so templates render through the active theme chain.
func (h *handler) withRequestState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, persist := webi18n.ResolveTag(r)
		if persist {
			webi18n.SetLanguageCookie(w, tag)
		}
		ctx := requestctx.WithLanguage(r.Context(), tag)
		ctx = requestctx.WithIconResolver(ctx, h.site.Resolver())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// localizer returns the printer and tag string for the request language.
func localizer(r *http.Request) (*message.Printer, string) {
	tag := requestctx.LanguageFromContext(r.Context())
	return webi18n.Printer(tag), tag.String()
}

func (h *handler) pageContext(r *http.Request) webtemplates.PageContext {
	loc, lang := localizer(r)
	return webtemplates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		AppName:      h.appName,
	}
}

// handleHome renders the landing page.
func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := h.pageContext(r)
	params := webtemplates.HomeParams{
		FeaturedIcons: h.iconListItems(featuredIconNames),
		ThemeTitle:    h.site.ActiveTheme().Title,
	}
	htmx.RenderPage(w, r, webtemplates.HomePage(page, params), pageTitleTag(page.Loc, "title.home"))
}

// handleIconLibrary renders the gallery of every resolvable icon, optionally
// filtered by the q query parameter.
func (h *handler) handleIconLibrary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := h.pageContext(r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	params := webtemplates.IconLibraryParams{
		Query: query,
		Items: h.iconListItems(h.filterIconNames(query)),
	}
	htmx.RenderPage(w, r, webtemplates.IconLibraryPage(page, params), pageTitleTag(page.Loc, "title.icons"))
}

// handleIconDetail renders one icon's resolution outcome.
func (h *handler) handleIconDetail(w http.ResponseWriter, r *http.Request) {
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/icons/")
	if name == "" || !icon.ValidName(name) {
		h.renderNotFound(w, r)
		return
	}

	page := h.pageContext(r)
	params := webtemplates.IconDetailParams{
		Name:  name,
		Title: iconTitle(name),
	}
	if def, ok := icons.Lookup(name); ok {
		params.Description = def.Description
	}

	resolver := requestctx.IconResolverFromContext(r.Context())
	if resolver == nil {
		resolver = h.site.Resolver()
	}
	if resolved, ok := resolver.ResolvePath(name, false); ok {
		params.Found = true
		params.Path = resolved
		params.Provider = h.providerLabel(page.Loc, name, resolved)
	}
	if corePath, ok := resolver.ResolvePath(name, true); ok {
		params.CorePath = corePath
	}

	htmx.RenderPage(w, r, webtemplates.IconDetailPage(page, params), htmx.TitleTag(sharedtemplates.ComposePageTitle(params.Title)))
}

// renderNotFound renders the localized not-found page.
func (h *handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r)
	title := webtemplates.T(page.Loc, "error.not_found.title")
	message := webtemplates.T(page.Loc, "error.not_found.message")
	w.WriteHeader(http.StatusNotFound)
	templ.Handler(webtemplates.ErrorPage(page, title, message)).ServeHTTP(w, r)
}

// providerLabel localizes which provider supplied the resolved path.
func (h *handler) providerLabel(loc webtemplates.Localizer, name string, resolved string) string {
	provider, ok := h.site.Provider(name, resolved)
	if !ok {
		return ""
	}
	switch provider.Kind {
	case ProviderTheme:
		return webtemplates.T(loc, "icon.provider_theme", provider.Title)
	case ProviderExtension:
		return webtemplates.T(loc, "icon.provider_extension", provider.Title)
	default:
		return webtemplates.T(loc, "icon.provider_core")
	}
}

func (h *handler) iconListItems(names []string) []webtemplates.IconListItem {
	items := make([]webtemplates.IconListItem, 0, len(names))
	for _, name := range names {
		items = append(items, webtemplates.IconListItem{Name: name, Title: iconTitle(name)})
	}
	return items
}

// filterIconNames narrows the site's icon names to case-insensitive substring
// matches against the machine name or catalog title.
func (h *handler) filterIconNames(query string) []string {
	names := h.site.IconNames()
	if query == "" {
		return names
	}
	needle := strings.ToLower(query)
	matched := names[:0]
	for _, name := range names {
		if strings.Contains(name, needle) || strings.Contains(strings.ToLower(iconTitle(name)), needle) {
			matched = append(matched, name)
		}
	}
	return matched
}

// iconTitle falls back to the machine name when the catalog has no entry.
func iconTitle(name string) string {
	if def, ok := icons.Lookup(name); ok {
		return def.Title
	}
	return name
}

// pageTitleTag formats the composed page title for HTMX partial responses.
func pageTitleTag(loc webtemplates.Localizer, key string) string {
	return htmx.TitleTag(sharedtemplates.ComposePageTitle(webtemplates.T(loc, key)))
}
