// Package server exposes payment-method forms over HTTP for previews and
// server-side validation.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/orchestrator"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/renderers/vanilla"
	"github.com/goliatone/go-payforms/pkg/schema"
	"github.com/goliatone/go-payforms/pkg/transform"
)

const (
	formatHTML = "html"
	formatJSON = "json"

	htmlRenderer = "vanilla"
	jsonRenderer = "json"

	maxBodyBytes = 1 << 20
)

// reservedQuery are query parameters that configure the render rather than
// prefill a field.
var reservedQuery = map[string]struct{}{
	"format":  {},
	"locale":  {},
	"theme":   {},
	"variant": {},
}

// Option customises a Server.
type Option func(*Server)

// WithMethods limits the served payment methods.
func WithMethods(methods ...forms.Method) Option {
	return func(s *Server) {
		if len(methods) == 0 {
			return
		}
		s.methods = make(map[forms.Method]struct{}, len(methods))
		for _, method := range methods {
			s.methods[method] = struct{}{}
		}
	}
}

// WithLocale sets the locale used when a request names none.
func WithLocale(locale string) Option {
	return func(s *Server) {
		s.locale = locale
	}
}

// WithAssetsPrefix sets the URL prefix for the embedded stylesheet.
func WithAssetsPrefix(prefix string) Option {
	return func(s *Server) {
		s.assetsPrefix = "/" + strings.Trim(prefix, "/")
	}
}

// Server serves forms built by an orchestrator.
type Server struct {
	orch         *orchestrator.Orchestrator
	logger       *log.Logger
	methods      map[forms.Method]struct{}
	locale       string
	assetsPrefix string
}

// New constructs a Server. A nil logger discards output.
func New(orch *orchestrator.Orchestrator, logger *log.Logger, options ...Option) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if orch == nil {
		orch = orchestrator.New(orchestrator.WithLogger(logger))
	}
	s := &Server{
		orch:         orch,
		logger:       logger,
		assetsPrefix: "/assets",
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns a router with every route mounted.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.withLogging)
	s.AppendRoutes(router)
	return router
}

// AppendRoutes mounts the form routes on r.
func (s *Server) AppendRoutes(r chi.Router) {
	r.Get("/-/live", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", s.listForms)
		r.Route("/{method}", func(r chi.Router) {
			r.Get("/", s.getForm)
			r.Post("/", s.submitForm)
			r.Get("/schema", s.getSchema)
		})
	})
	r.Handle(s.assetsPrefix+"/*", http.StripPrefix(s.assetsPrefix, http.FileServer(http.FS(vanilla.AssetsFS()))))
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

type formSummary struct {
	Method string   `json:"method"`
	Fields []string `json:"fields"`
	URL    string   `json:"url"`
}

func (s *Server) listForms(w http.ResponseWriter, _ *http.Request) {
	var out []formSummary
	for _, method := range forms.Methods() {
		if !s.enabled(method) {
			continue
		}
		layout := forms.MustLookup(method)
		summary := formSummary{Method: string(method), URL: "/forms/" + string(method)}
		for _, leaf := range layout.Leaves() {
			summary.Fields = append(summary.Fields, leaf.Identifier().String())
		}
		out = append(out, summary)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	method, ok := s.method(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	s.renderForm(w, r, http.StatusOK, orchestrator.Request{
		Method:        string(method),
		Values:        transform.ValuesFromStrings(prefill(query)),
		Renderer:      s.rendererFor(r),
		ThemeName:     query.Get("theme"),
		ThemeVariant:  query.Get("variant"),
		RenderOptions: s.renderOptions(r, method),
	})
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	method, ok := s.method(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, schema.ForLayout(forms.MustLookup(method)))
}

type submissionResponse struct {
	Status string              `json:"status"`
	Method string              `json:"method"`
	Values map[string]string   `json:"values,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func (s *Server) submitForm(w http.ResponseWriter, r *http.Request) {
	method, ok := s.method(w, r)
	if !ok {
		return
	}

	submitted, err := readSubmission(w, r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid submission", err)
		return
	}

	req := orchestrator.Request{Method: string(method), Submitted: submitted}
	form, err := s.orch.Build(r.Context(), req)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "build form", err)
		return
	}

	values, err := schema.ValidateForm(forms.MustLookup(method), form.Elements)
	var verr *schema.ValidationError
	switch {
	case err == nil:
		values["type"] = string(method)
		s.logger.Info("submission accepted", "method", method)
		s.writeJSON(w, http.StatusOK, submissionResponse{Status: "ok", Method: string(method), Values: values})
		return
	case !errors.As(err, &verr):
		s.respondError(w, r, http.StatusInternalServerError, "validate submission", err)
		return
	}

	s.logger.Info("submission rejected", "method", method, "fields", len(verr.Fields))
	if s.rendererFor(r) == htmlRenderer {
		req.Renderer = htmlRenderer
		req.ThemeName = r.URL.Query().Get("theme")
		req.ThemeVariant = r.URL.Query().Get("variant")
		req.RenderOptions = s.renderOptions(r, method)
		req.RenderOptions.ShowValidation = true
		s.renderForm(w, r, http.StatusUnprocessableEntity, req)
		return
	}
	s.writeJSON(w, http.StatusUnprocessableEntity, submissionResponse{
		Status: "error",
		Method: string(method),
		Errors: verr.Fields,
	})
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, req orchestrator.Request) {
	renderer, err := s.orch.Renderer(req.Renderer)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "renderer unavailable", err)
		return
	}
	output, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "render form", err)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(output)
}

func (s *Server) renderOptions(r *http.Request, method forms.Method) render.RenderOptions {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = s.locale
	}
	return render.RenderOptions{
		Locale: locale,
		Action: "/forms/" + string(method),
	}
}

func (s *Server) method(w http.ResponseWriter, r *http.Request) (forms.Method, bool) {
	method, err := forms.ParseMethod(chi.URLParam(r, "method"))
	if err == nil && !s.enabled(method) {
		err = fmt.Errorf("%w: %q is disabled", forms.ErrUnknownMethod, method)
	}
	if err != nil {
		s.respondError(w, r, http.StatusNotFound, "unknown payment method", err)
		return "", false
	}
	return method, true
}

func (s *Server) enabled(method forms.Method) bool {
	if len(s.methods) == 0 {
		return true
	}
	_, ok := s.methods[method]
	return ok
}

func (s *Server) rendererFor(r *http.Request) string {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case formatJSON:
		return jsonRenderer
	case formatHTML:
		return htmlRenderer
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return jsonRenderer
	}
	return s.orch.Negotiate(r.Header.Get("Accept"))
}

func prefill(query url.Values) map[string]string {
	out := make(map[string]string, len(query))
	for key, values := range query {
		if _, reserved := reservedQuery[key]; reserved || len(values) == 0 {
			continue
		}
		out[key] = values[0]
	}
	return out
}

// readSubmission accepts JSON objects or url-encoded forms. Non-string JSON
// values are treated as absent.
func readSubmission(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return transform.ValuesFromMap(body).Strings(), nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	out := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging logs each request and recovers panics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
