package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattu22/pptgenerator/pkg/contentgen"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
)

const boardroomSpecJSON = `{
	"name": "boardroom",
	"layouts": [
		{"name": "Title Slide", "placeholders": [
			{"index": 0, "type_id": 1, "left": 0.5, "top": 2.5, "width": 9.0, "height": 1.2},
			{"index": 1, "type_id": 4, "left": 0.5, "top": 4.0, "width": 9.0, "height": 0.8}
		]},
		{"name": "Title and Content", "placeholders": [
			{"index": 0, "type_id": 1, "left": 0.5, "top": 0.3, "width": 9.0, "height": 1.0},
			{"index": 1, "type_id": 2, "left": 0.5, "top": 1.5, "width": 9.0, "height": 5.0}
		]},
		{"name": "Two Content", "placeholders": [
			{"index": 0, "type_id": 1, "left": 0.5, "top": 0.3, "width": 9.0, "height": 1.0},
			{"index": 1, "type_id": 2, "left": 0.5, "top": 1.5, "width": 4.4, "height": 5.0},
			{"index": 2, "type_id": 2, "left": 5.1, "top": 1.5, "width": 4.4, "height": 5.0}
		]}
	]
}`

// stubProvider returns a fixed response and records the last request.
type stubProvider struct {
	response string
	lastReq  contentgen.Request
}

func (p *stubProvider) GenerateContent(_ context.Context, req contentgen.Request) (string, error) {
	p.lastReq = req
	return p.response, nil
}

func newTestServer(t *testing.T, mutate func(*Config)) *Server {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boardroom.json"), []byte(boardroomSpecJSON), 0o644))

	cfg := Config{
		TemplateDir: dir,
		Logger:      log.New(io.Discard),
		Generator:   pipeline.GeneratorStatic,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, rd))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &envelope)
	return envelope.Error.Code
}

func planDeckBody() map[string]any {
	return map[string]any{
		"template": "boardroom",
		"deck": map[string]any{
			"title": "Q3 Review",
			"slides": []map[string]any{
				{"heading": "Where We Stand", "bullet_points": []any{"Revenue up 12%", "Churn flat"}},
				{"heading": "Next Steps", "bullet_points": []any{"Hire two AEs", "Ship the integration"}},
			},
		},
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "dev", body.Version)
	assert.Equal(t, 1, body.TemplatesAvailable)
	assert.False(t, body.Time.IsZero())
}

func TestListTemplates(t *testing.T) {
	s := newTestServer(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(s.templateDir, "broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.templateDir, "notes.txt"), []byte("ignored"), 0o644))

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body templatesResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Templates, 2)

	boardroom := body.Templates[0]
	assert.Equal(t, "boardroom", boardroom.Name)
	assert.Equal(t, "boardroom.json", boardroom.File)
	assert.Equal(t, 3, boardroom.Layouts)
	assert.Equal(t, 2, boardroom.UsableLayouts)
	assert.Empty(t, boardroom.Error)

	broken := body.Templates[1]
	assert.Equal(t, "broken", broken.Name)
	assert.NotEmpty(t, broken.Error)
	assert.Zero(t, broken.Layouts)
}

func TestAnalyzeTemplate(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/templates/boardroom/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body analysisResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "boardroom", body.Template)
	assert.False(t, body.Cached)
	require.NotNil(t, body.Analysis)
	assert.Equal(t, 3, body.Analysis.TotalLayouts)

	// Second call hits the memo.
	rec = doJSON(t, h, http.MethodPost, "/api/templates/boardroom/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Cached)

	// Refresh bypasses it.
	rec = doJSON(t, h, http.MethodPost, "/api/templates/boardroom/analysis", analyzeRequest{Refresh: true})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.False(t, body.Cached)
}

func TestAnalyzeTemplateUnknown(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/templates/ballroom/analysis", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apperrors.ErrCodeTemplateNotFound), errorCode(t, rec))
}

func TestPlanWithDeck(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/plan", planDeckBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body deckResponse
	decodeBody(t, rec, &body)
	assert.Len(t, body.DeckID, 36)
	assert.Equal(t, "boardroom", body.Template)
	assert.Equal(t, "Q3 Review", body.Topic, "topic falls back to the deck title")
	assert.Empty(t, body.Revisions)
	require.NotEmpty(t, body.Plan)

	var plan match.DeckPlan
	require.NoError(t, json.Unmarshal(body.Plan, &plan))
	assert.Equal(t, "boardroom", plan.Template)
	require.Len(t, plan.Slides, 2)
	assert.Equal(t, "Where We Stand", plan.Slides[0].Heading)

	// The deck is fetchable by id.
	rec = doJSON(t, h, http.MethodGet, "/api/decks/"+body.DeckID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched deckResponse
	decodeBody(t, rec, &fetched)
	assert.Equal(t, body.DeckID, fetched.DeckID)
	assert.JSONEq(t, string(body.Plan), string(fetched.Plan))
}

func TestPlanGeneratesFromTopic(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/plan", map[string]any{
		"template":    "boardroom",
		"topic":       "Platform Strategy",
		"slide_count": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body deckResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Platform Strategy", body.Topic)

	var plan match.DeckPlan
	require.NoError(t, json.Unmarshal(body.Plan, &plan))
	assert.Len(t, plan.Slides, 4)
}

func TestPlanValidation(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   apperrors.Code
	}{
		{"missingTemplate", map[string]any{"topic": "x"}, http.StatusBadRequest, apperrors.ErrCodeInvalidOptions},
		{"unknownTemplate", map[string]any{"template": "ballroom", "topic": "x"}, http.StatusNotFound, apperrors.ErrCodeTemplateNotFound},
		{"noDeckOrTopic", map[string]any{"template": "boardroom"}, http.StatusBadRequest, apperrors.ErrCodeInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/plan", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, string(tt.wantCode), errorCode(t, rec))
		})
	}
}

func TestPlanMalformedBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader("{not json")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(apperrors.ErrCodeInvalidPayload), errorCode(t, rec))
}

func TestGetDeckNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/decks/definitely-not-a-deck", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(apperrors.ErrCodeSessionNotFound), errorCode(t, rec))
}

func TestGetDeckExpired(t *testing.T) {
	store := session.NewMemoryStore()
	s := newTestServer(t, func(cfg *Config) { cfg.Store = store })

	sess, err := session.New("Q3 Review", "boardroom", -time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), sess))

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/decks/"+sess.ID, nil)
	require.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, string(apperrors.ErrCodeSessionExpired), errorCode(t, rec))
}

func TestRevise(t *testing.T) {
	stub := &stubProvider{response: `{
		"title": "Q3 Review, Revised",
		"slides": [{"heading": "Sharper Numbers", "bullet_points": ["Revenue up 14%"]}]
	}`}
	s := newTestServer(t, func(cfg *Config) { cfg.Provider = stub })
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/plan", planDeckBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created deckResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, h, http.MethodPost, "/api/decks/"+created.DeckID+"/revise", reviseRequest{
		Instructions: []string{"tighten the numbers"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var revised deckResponse
	decodeBody(t, rec, &revised)
	assert.Equal(t, created.DeckID, revised.DeckID)
	assert.Equal(t, []string{"tighten the numbers"}, revised.Revisions)

	var plan match.DeckPlan
	require.NoError(t, json.Unmarshal(revised.Plan, &plan))
	require.Len(t, plan.Slides, 1)
	assert.Equal(t, "Sharper Numbers", plan.Slides[0].Heading)

	// The revision prompt carried the instruction and the previous deck.
	assert.Contains(t, stub.lastReq.Prompt, "tighten the numbers")
	assert.Contains(t, stub.lastReq.Prompt, "Where We Stand")
}

func TestReviseValidation(t *testing.T) {
	store := session.NewMemoryStore()
	s := newTestServer(t, func(cfg *Config) { cfg.Store = store })
	h := s.Handler()

	t.Run("unknownDeck", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/decks/missing/revise", reviseRequest{
			Instructions: []string{"anything"},
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, string(apperrors.ErrCodeSessionNotFound), errorCode(t, rec))
	})

	t.Run("noInstructions", func(t *testing.T) {
		sess, err := session.New("t", "boardroom", time.Hour)
		require.NoError(t, err)
		sess.Deck = `{"title": "t", "slides": []}`
		require.NoError(t, store.Set(context.Background(), sess))

		rec := doJSON(t, h, http.MethodPost, "/api/decks/"+sess.ID+"/revise", reviseRequest{
			Instructions: []string{"   "},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(apperrors.ErrCodeInvalidInput), errorCode(t, rec))
	})

	t.Run("historyFull", func(t *testing.T) {
		sess, err := session.New("t", "boardroom", time.Hour)
		require.NoError(t, err)
		sess.Deck = `{"title": "t", "slides": []}`
		for i := 0; i < session.MaxRevisions; i++ {
			require.NoError(t, sess.AddRevision("earlier round"))
		}
		require.NoError(t, store.Set(context.Background(), sess))

		rec := doJSON(t, h, http.MethodPost, "/api/decks/"+sess.ID+"/revise", reviseRequest{
			Instructions: []string{"one more"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(apperrors.ErrCodeInvalidInput), errorCode(t, rec))
	})
}

func TestTemplatePath(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name     string
		template string
		wantCode apperrors.Code
	}{
		{"empty", "", apperrors.ErrCodeInvalidOptions},
		{"traversal", "../boardroom", apperrors.ErrCodeInvalidInput},
		{"nested", "sub/boardroom", apperrors.ErrCodeInvalidInput},
		{"hidden", ".boardroom", apperrors.ErrCodeInvalidInput},
		{"unknown", "ballroom", apperrors.ErrCodeTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.templatePath(tt.template)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
		})
	}

	path, err := s.templatePath("boardroom")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.templateDir, "boardroom.json"), path)
}
