package server

import (
	"net/http"
	"strconv"

	"github.com/esimov/koch"
)

type indexPage struct {
	Level   int
	Scale   float64
	Color   string
	Half    string
	Colors  []string
	Halves  []string
	Images  []string
	OutDir  string
	Error   string
	Success bool
}

func (s *Server) newIndexPage() indexPage {
	def := koch.DefaultParams()
	return indexPage{
		Level:  def.Depth,
		Scale:  def.Scale,
		Color:  def.Color,
		Half:   string(def.Half),
		Colors: koch.ColorNames(),
		Halves: []string{"complete", "lower", "upper", "left", "right"},
		OutDir: s.store.Dir(),
	}
}

// handleIndex renders the generator form and, on POST, runs a generation
// round trip: validate, generate, render, save, list.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := s.newIndexPage()

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			page.Error = "malformed form submission"
			s.renderIndex(w, http.StatusBadRequest, page)
			return
		}

		if r.PostForm.Has("clear_images") {
			s.store.Clear()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		params, err := parseFormParams(r)
		if err != nil {
			page.Error = err.Error()
			s.fillImages(&page)
			s.renderIndex(w, http.StatusOK, page)
			return
		}
		page.Level = params.Depth
		page.Scale = params.Scale
		page.Color = params.Color
		page.Half = string(params.Half)

		if err := params.Validate(); err != nil {
			page.Error = err.Error()
			s.fillImages(&page)
			s.renderIndex(w, http.StatusOK, page)
			return
		}

		boundary := koch.ExtractHalf(koch.Generate(params.Depth, params.Scale), params.Half)
		img, err := s.renderer.Render(boundary, params)
		if err != nil {
			s.log.Error("server.render_failed", "error", err)
			page.Error = "failed to render image"
			s.fillImages(&page)
			s.renderIndex(w, http.StatusInternalServerError, page)
			return
		}

		if _, err := s.store.Save(img, params); err != nil {
			s.log.Error("server.save_failed", "error", err)
			page.Error = "failed to save image"
			s.fillImages(&page)
			s.renderIndex(w, http.StatusInternalServerError, page)
			return
		}
		page.Success = true
	}

	s.fillImages(&page)
	s.renderIndex(w, http.StatusOK, page)
}

func (s *Server) fillImages(page *indexPage) {
	files, err := s.store.List()
	if err != nil {
		s.log.Warn("server.list_failed", "error", err)
		return
	}
	for _, f := range files {
		page.Images = append(page.Images, "/static/images/"+f.Name)
	}
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, page indexPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, page); err != nil {
		s.log.Error("server.template_failed", "error", err)
	}
}

func parseFormParams(r *http.Request) (koch.Params, error) {
	params := koch.DefaultParams()

	if v := r.PostFormValue("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, &koch.ParamError{Param: "level", Value: v, Reason: "must be an integer"}
		}
		params.Depth = n
	}
	if v := r.PostFormValue("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, &koch.ParamError{Param: "scale", Value: v, Reason: "must be a number"}
		}
		params.Scale = f
	}
	if v := r.PostFormValue("color"); v != "" {
		params.Color = v
	}
	if v := r.PostFormValue("half_type"); v != "" {
		params.Half = koch.Half(v)
	}
	return params, nil
}
