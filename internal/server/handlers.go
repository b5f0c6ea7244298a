package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nattu22/pptgenerator/pkg/buildinfo"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/httputil"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
	"github.com/nattu22/pptgenerator/pkg/template"

	"github.com/go-chi/chi/v5"
)

// analyzeConcurrency caps parallel template analyses during listing.
const analyzeConcurrency = 4

type healthResponse struct {
	Status             string    `json:"status"`
	Version            string    `json:"version"`
	Time               time.Time `json:"time"`
	TemplatesAvailable int       `json:"templates_available"`
}

type templateSummary struct {
	Name            string `json:"name"`
	File            string `json:"file"`
	Layouts         int    `json:"layouts,omitempty"`
	UsableLayouts   int    `json:"usable_layouts,omitempty"`
	FallbackLayouts int    `json:"fallback_layouts,omitempty"`
	Error           string `json:"error,omitempty"`
}

type templatesResponse struct {
	Templates []templateSummary `json:"templates"`
}

type analyzeRequest struct {
	Refresh bool `json:"refresh,omitempty"`
}

type analysisResponse struct {
	Template string             `json:"template"`
	Cached   bool               `json:"cached"`
	Analysis *template.Analysis `json:"analysis"`
}

type reviseRequest struct {
	Instructions   []string `json:"instructions"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
	Generator      string   `json:"generator,omitempty"`
}

// deckResponse is the session view returned by plan, revise, and fetch.
type deckResponse struct {
	DeckID    string          `json:"deck_id"`
	Template  string          `json:"template"`
	Topic     string          `json:"topic,omitempty"`
	Revisions []string        `json:"revisions,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	Plan      json.RawMessage `json:"plan,omitempty"`
}

func deckResponseFrom(sess *session.Session) deckResponse {
	return deckResponse{
		DeckID:    sess.ID,
		Template:  sess.Template,
		Topic:     sess.Topic,
		Revisions: sess.Revisions,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		ExpiresAt: sess.ExpiresAt,
		Plan:      sess.Plan,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	names, _ := s.listTemplates()
	httputil.RespondJSON(w, http.StatusOK, healthResponse{
		Status:             "ok",
		Version:            buildinfo.Version,
		Time:               time.Now().UTC(),
		TemplatesAvailable: len(names),
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.listTemplates()
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	// Analyses are memoized, so only the first listing pays for them.
	// A template that fails analysis stays in the listing with its
	// error; one bad descriptor must not hide the rest.
	summaries := make([]templateSummary, len(names))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(analyzeConcurrency)
	for i, name := range names {
		g.Go(func() error {
			summary := templateSummary{Name: name, File: name + ".json"}
			analysis, err := s.runner.Analyze(ctx, pipeline.Options{
				Template: filepath.Join(s.templateDir, name+".json"),
				Logger:   s.logger,
			})
			if err != nil {
				summary.Error = apperrors.UserMessage(err)
			} else {
				summary.Layouts = analysis.TotalLayouts
				summary.UsableLayouts, summary.FallbackLayouts = countLayouts(analysis)
			}
			summaries[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	httputil.RespondJSON(w, http.StatusOK, templatesResponse{Templates: summaries})
}

func (s *Server) handleAnalyzeTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path, err := s.templatePath(name)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	// The request body is optional; {"refresh": true} bypasses the memo.
	var req analyzeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		httputil.RespondError(w, err)
		return
	}

	analysis, cached, err := s.runner.AnalyzeWithCacheInfo(r.Context(), pipeline.Options{
		Template: path,
		Refresh:  req.Refresh,
		Logger:   s.logger,
	})
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, analysisResponse{
		Template: name,
		Cached:   cached,
		Analysis: analysis,
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := httputil.DecodeJSON(r, &opts); err != nil {
		httputil.RespondError(w, err)
		return
	}

	name := opts.Template
	path, err := s.templatePath(name)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	opts.Template = path
	s.applyRunOptions(&opts)

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	topic := opts.Topic
	if topic == "" {
		topic = result.Deck.Title
	}
	sess, err := session.New(topic, name, s.ttl)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	if err := s.storePlan(r, sess, result); err != nil {
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, deckResponseFrom(sess))
}

func (s *Server) handleRevise(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r, chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	var req reviseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, err)
		return
	}
	instructions := cleanInstructions(req.Instructions)
	if len(instructions) == 0 {
		httputil.RespondError(w, apperrors.New(apperrors.ErrCodeInvalidInput,
			"at least one revision instruction is required"))
		return
	}
	if sess.Deck == "" {
		httputil.RespondError(w, apperrors.New(apperrors.ErrCodeInvalidInput,
			"deck session %s has no content to revise", sess.ID))
		return
	}
	for _, instruction := range instructions {
		if err := sess.AddRevision(instruction); err != nil {
			httputil.RespondError(w, err)
			return
		}
	}

	opts := pipeline.Options{AdditionalInfo: req.AdditionalInfo, Generator: req.Generator}
	opts.Template, err = s.templatePath(sess.Template)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	s.applyRunOptions(&opts)

	result, err := s.runner.Revise(r.Context(), sess.Deck, instructions, opts)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}

	sess.Touch(s.ttl)
	if err := s.storePlan(r, sess, result); err != nil {
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deckResponseFrom(sess))
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r, chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, deckResponseFrom(sess))
}

// applyRunOptions overlays the server's runtime configuration on a
// request's options. Clients cannot inject runtime fields; those come
// from here alone.
func (s *Server) applyRunOptions(opts *pipeline.Options) {
	opts.Logger = s.logger
	opts.Tunables = s.tunables
	if s.provider != nil {
		opts.Provider = s.provider
	}
	if opts.Generator == "" {
		opts.Generator = s.generator
	}
}

// loadSession fetches a session or the error to respond with: unknown
// ids are SESSION_NOT_FOUND, expired ones SESSION_EXPIRED.
func (s *Server) loadSession(r *http.Request, id string) (*session.Session, error) {
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, "no deck session %s", id)
	}
	return sess, nil
}

// storePlan records a run's deck and plan on the session and persists it.
func (s *Server) storePlan(r *http.Request, sess *session.Session, result *pipeline.Result) error {
	plan, err := json.Marshal(result.Plan)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode plan")
	}
	sess.Deck = result.DeckJSON
	sess.Plan = plan
	return s.store.Set(r.Context(), sess)
}

func countLayouts(a *template.Analysis) (usable, fallback int) {
	for i := range a.Layouts {
		if a.Layouts[i].Usable() {
			usable++
		}
		if a.Layouts[i].LayoutType == template.LayoutFallback {
			fallback++
		}
	}
	return usable, fallback
}

func cleanInstructions(in []string) []string {
	var out []string
	for _, instruction := range in {
		if trimmed := strings.TrimSpace(instruction); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
