package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/query"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateData is passed to every page.
type TemplateData struct {
	CurrentUser   *common.UserResult
	Notifications []*common.NotificationResult
	Success       string
	Error         string
	Page          string

	Campgrounds []*common.CampgroundResult
	Campground  *common.CampgroundResult
	Comments    []*common.CommentResult
	Comment     *common.CommentResult
	Likers      []string
	Index       *query.CampgroundIndexResult
	Profile     *query.UserProfileResult
	All         []*common.NotificationResult
	Token       string
	Form        map[string]string
}

type Renderer struct {
	templates *template.Template
	logger    *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs(time.Now)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl, logger: logger}, nil
}

func templateFuncs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		"iterate": func(count int) []int {
			items := make([]int, 0, count)
			for i := 1; i <= count; i++ {
				items = append(items, i)
			}
			return items
		},
		"inc": func(a int) int { return a + 1 },
		"dec": func(a int) int { return a - 1 },
		"paginationURL": func(page int, search string) template.URL {
			q := url.Values{}
			q.Set("page", strconv.Itoa(page))
			if search != "" {
				q.Set("search", search)
			}
			return template.URL("/campgrounds?" + q.Encode())
		},
		"formatDateTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 02, 2006 at 15:04")
		},
		"fromNow": func(t time.Time) string {
			return fromNow(now(), t)
		},
		"price": func(cost float64) string {
			return strconv.FormatFloat(cost, 'f', 2, 64)
		},
	}
}

// fromNow renders a coarse relative time such as "3 days ago".
func fromNow(now, t time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "a few seconds ago"
	}
	units := []struct {
		size time.Duration
		name string
	}{
		{365 * 24 * time.Hour, "year"},
		{30 * 24 * time.Hour, "month"},
		{24 * time.Hour, "day"},
		{time.Hour, "hour"},
		{time.Minute, "minute"},
	}
	for _, u := range units {
		if d >= u.size {
			n := int(d / u.size)
			if n == 1 {
				return "a " + u.name + " ago"
			}
			return strconv.Itoa(n) + " " + u.name + "s ago"
		}
	}
	return "a few seconds ago"
}

// Render executes the named template into a buffer so a failure never sends a partial page.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data *TemplateData) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, name, data); err != nil {
		rd.logger.Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
