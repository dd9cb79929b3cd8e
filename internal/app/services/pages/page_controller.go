package pages

import (
	"fmt"
	"html/template"
	"net/http"

	"svitlo-service/internal/app/contracts"
	"svitlo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type PageController struct {
	CalendarUsecase contracts.CalendarUsecase
	Log             *zap.Logger
}

func NewPageController(calendarUsecase contracts.CalendarUsecase, logger *zap.Logger) *PageController {
	return &PageController{
		CalendarUsecase: calendarUsecase,
		Log:             logger,
	}
}

type groupView struct {
	ID     string
	Name   string
	IcsURL string
}

type homeView struct {
	Groups []groupView
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="uk">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Календар відключень електроенергії у Києві</title>
<meta name="description" content="Додайте графік планових відключень електроенергії у Києві до свого календаря.">
</head>
<body>
<main>
<h1>Календар відключень електроенергії у Києві</h1>
<p>Знайдіть свою чергу на сайті <a href="https://static.yasno.ua/kyiv/outages">Yasno</a> і додайте посилання на календар у свій застосунок.</p>
{{if .Groups}}
<ul>
{{range .Groups}}<li><strong>{{.Name}}</strong> — <a href="{{.IcsURL}}">{{.IcsURL}}</a></li>
{{end}}</ul>
{{else}}
<p>Список черг ще не завантажено, спробуйте пізніше.</p>
{{end}}
</main>
</body>
</html>
`))

// Home lists a subscription link for every currently known group. The list
// comes from the cache bookkeeping; before a first regeneration it is empty,
// which is not an error.
func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	groups, err := ctrl.CalendarUsecase.KnownGroups(r.Context())
	if err != nil {
		ctrl.Log.Warn("pageController.Home failed to load known groups", zap.Error(err))
		groups = nil
	}

	view := homeView{}
	for _, group := range groups {
		view.Groups = append(view.Groups, groupView{
			ID:     group,
			Name:   fmt.Sprintf("Черга %s", group),
			IcsURL: fmt.Sprintf("/calendar/%s.ics", group),
		})
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	if err := homeTemplate.Execute(w, view); err != nil {
		ctrl.Log.Error("pageController.Home failed to render template", zap.Error(err))
	}
}

func (ctrl *PageController) Robots(w http.ResponseWriter, r *http.Request) {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	origin := fmt.Sprintf("%s://%s", scheme, r.Host)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", origin)
}

// RedirectHome is the catch-all for unknown routes.
func (ctrl *PageController) RedirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", constvars.StatusFound)
}
