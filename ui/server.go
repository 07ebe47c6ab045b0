// Package ui serves a small web front end for exploring buildups and the
// glazing schedules of a workspace.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/glasslab/gstr/format"
	"github.com/glasslab/gstr/glass"
	"github.com/glasslab/gstr/glass/token"
	"github.com/glasslab/gstr/workspace"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	workspace  *workspace.Workspace
	staticFS   fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

func NewServer(ws *workspace.Workspace) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"severityClass": func(s workspace.Severity) string {
			switch s {
			case workspace.SeverityError:
				return "error"
			case workspace.SeverityWarning:
				return "warning"
			default:
				return "info"
			}
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		workspace:  ws,
		staticFS:   staticFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /b", s.handleBuildup)
	s.mux.HandleFunc("GET /api/parse", s.handleAPIParse)
	s.mux.HandleFunc("GET /schedules/{path...}", s.handleSchedule)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

// BuildupView is the page model for a single parsed buildup.
type BuildupView struct {
	Query    string
	Err      string
	GStr     string
	Actual   string
	Nominal  string
	Size     string
	Aspect   string
	Support  string
	Report   string
	Products []ProductRow
}

type ProductRow struct {
	Code         string
	Known        bool
	Name         string
	Manufacturer string
}

func (s *Server) buildView(q string) BuildupView {
	view := BuildupView{Query: q}
	if q == "" {
		return view
	}
	b, err := glass.Parse(q)
	if err != nil {
		view.Err = err.Error()
		return view
	}

	view.GStr = b.GStr()
	if t, ok := b.ActualThickness(); ok {
		view.Actual = token.FormatNumber(t) + " mm"
	}
	if t, ok := b.NominalThickness(); ok {
		view.Nominal = token.FormatNumber(t) + " mm"
	}
	if width, ok := b.Width(); ok {
		if height, ok := b.Height(); ok {
			view.Size = token.FormatNumber(width) + " x " + token.FormatNumber(height) + " mm"
		}
	}
	if ar, err := b.AspectRatio(); err == nil {
		view.Aspect = fmt.Sprintf("%.2f", ar)
	}
	if sup, ok := b.Support(); ok {
		view.Support = fmt.Sprintf("%d-edge", int(sup))
	}

	var report bytes.Buffer
	if err := format.NewTextEncoder(&report).Encode(b); err == nil {
		view.Report = report.String()
	}

	if cat := s.workspace.Catalog(); cat != nil {
		for _, res := range cat.Resolve(b) {
			row := ProductRow{Code: res.Code, Known: res.Known}
			if res.Known {
				row.Name = res.Product.Name
				row.Manufacturer = res.Product.Manufacturer
			}
			view.Products = append(view.Products, row)
		}
	}
	return view
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}
	q := r.FormValue("q")
	if q == "" {
		http.Error(w, "must provide a buildup", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/b?q="+url.QueryEscape(q), http.StatusSeeOther)
}

func (s *Server) handleBuildup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	accept := r.Header.Get("Accept")
	if accept == "application/json" {
		s.writeJSON(w, q)
		return
	}

	s.render(w, "buildup.html", s.buildView(q))
}

func (s *Server) handleAPIParse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r.URL.Query().Get("q"))
}

func (s *Server) writeJSON(w http.ResponseWriter, q string) {
	w.Header().Set("Content-Type", "application/json")
	b, err := glass.Parse(q)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	format.NewJSONEncoder(w).Encode(b)
}

// ScheduleRow is one schedule file on the index page.
type ScheduleRow struct {
	Name    string
	URL     string
	Entries int
	Errors  int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	paths := s.workspace.Paths()
	sort.Strings(paths)

	var rows []ScheduleRow
	for _, p := range paths {
		f := s.workspace.GetFile(p)
		if f == nil || f.Schedule == nil {
			continue
		}
		name := p
		if rel, err := filepath.Rel(s.workspace.RootDir(), p); err == nil {
			name = rel
		}
		row := ScheduleRow{
			Name:    name,
			URL:     "/schedules/" + name,
			Entries: len(f.Schedule.Entries),
		}
		for _, e := range f.Schedule.Entries {
			if e.Err != nil {
				row.Errors++
			}
		}
		rows = append(rows, row)
	}

	data := struct {
		Query     string
		Schedules []ScheduleRow
	}{
		Schedules: rows,
	}
	s.render(w, "index.html", data)
}

// EntryRow is one schedule line on the schedule page.
type EntryRow struct {
	Line      int
	Mark      string
	Raw       string
	GStr      string
	Thickness string
	Err       string
	Diags     []workspace.Diagnostic
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	rel := r.PathValue("path")
	path := filepath.Join(s.workspace.RootDir(), rel)

	f := s.workspace.GetFile(path)
	if f == nil || f.Schedule == nil {
		http.Error(w, "schedule not found", http.StatusNotFound)
		return
	}

	diags := s.workspace.Diagnostics(path)

	var rows []EntryRow
	for _, e := range f.Schedule.Entries {
		row := EntryRow{
			Line: e.Line,
			Mark: e.Mark,
			Raw:  e.Raw,
		}
		if e.Err != nil {
			row.Err = e.Err.Error()
		} else {
			row.GStr = e.Buildup.GStr()
			if t, ok := e.Buildup.ActualThickness(); ok {
				row.Thickness = token.FormatNumber(t) + " mm"
			}
		}
		for _, d := range diags {
			if d.Line == e.Line && d.Severity != workspace.SeverityError {
				row.Diags = append(row.Diags, d)
			}
		}
		rows = append(rows, row)
	}

	data := struct {
		Name    string
		Entries []EntryRow
	}{
		Name:    rel,
		Entries: rows,
	}
	s.render(w, "schedule.html", data)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files on disk under primaryPath so templates and
// styles can be edited without rebuilding, falling back to the embedded
// copies.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
