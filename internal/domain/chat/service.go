package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/domain/catalog"
	"cosmic-watch/services/astro-api/internal/infrastructure/gemini"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/infrastructure/metrics"
	"cosmic-watch/services/astro-api/internal/utils/platformerrors"
)

// Per-operation upstream timeouts.
const (
	probeTimeout  = 5 * time.Second
	quickTimeout  = 10 * time.Second
	testTimeout   = 15 * time.Second
	lookupTimeout = 20 * time.Second
	chatTimeout   = 30 * time.Second
)

const personaPrompt = `You are ASTRO, the mission assistant of Cosmic Watch, a real-time asteroid threat detection system.
You answer questions about asteroids, near-Earth objects, planets and space missions.
Be accurate, concise and friendly. Use plain language a curious non-expert can follow.

User message: %s`

const asteroidPrompt = `Provide a briefing on the asteroid "%s" with exactly these five sections:
1. Facts: size, composition, discovery.
2. Orbit: orbital period and close approaches to Earth.
3. Significance: missions or scientific importance.
4. Risk: any known impact probability.
5. Status: current monitoring status.
Keep the whole briefing under 250 words.`

const rateLimitedReply = "I'm sorry — the AI service is receiving too many requests right now. " +
	"Please try again in a moment. Monitoring systems remain fully operational in the meantime."

var chatParams = gemini.GenerationParams{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 1024,
	DisableSafety:   true,
}

var lookupParams = gemini.GenerationParams{
	Temperature:     0.4,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 512,
}

var probeParams = gemini.GenerationParams{
	Temperature:     0.1,
	MaxOutputTokens: 32,
}

// Upstream is the slice of the Gemini client the service needs. Narrowed for
// test stubs.
type Upstream interface {
	Generate(ctx context.Context, prompt, modelID string, params gemini.GenerationParams) (*gemini.Result, error)
}

// Service orchestrates upstream generation calls with fallback to the local
// catalog. It owns the active model cell.
type Service struct {
	upstream Upstream
	active   *ModelCell
	log      zerolog.Logger
}

func NewService(upstream *gemini.Client, cfg *config.Config) *Service {
	return newService(upstream, cfg.DefaultModel)
}

func newService(upstream Upstream, defaultModel string) *Service {
	return &Service{
		upstream: upstream,
		active:   NewModelCell(defaultModel),
		log:      logger.Component("chat"),
	}
}

// ActiveModel returns the model identifier currently used for new requests.
func (s *Service) ActiveModel() string {
	return s.active.Get()
}

// Reply is the outcome of a chat-style operation. A degraded reply keeps
// Success false but still carries human-readable text.
type Reply struct {
	Text     string
	Success  bool
	Model    string
	Tokens   int
	ErrorMsg string
	// FromCatalog is set when the text came from the local knowledge base.
	FromCatalog bool
}

// Chat sends the user message through the persona template to the active
// model. Upstream failures never escape: rate limits produce an apology,
// model-not-found advances the active model, and every failure falls back to
// the keyword catalog keyed on the original message.
func (s *Service) Chat(ctx context.Context, message string) Reply {
	model := s.active.Get()
	callCtx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.upstream.Generate(callCtx, fmt.Sprintf(personaPrompt, message), model, chatParams)
	metrics.ObserveUpstreamCall("chat", model, time.Since(start), err)
	if err == nil {
		return Reply{Text: result.Text, Success: true, Model: model, Tokens: result.TotalTokens}
	}

	s.log.Warn().Err(err).Str("model", model).Msg("chat generation failed, degrading")

	metrics.FallbackServedTotal.WithLabelValues("chat").Inc()

	if gemini.IsRateLimited(err) {
		return Reply{Text: rateLimitedReply, Model: model, ErrorMsg: "upstream rate limited", FromCatalog: true}
	}

	if gemini.IsModelNotFound(err) {
		if next := catalog.NextModel(model); next != "" {
			s.active.Set(next)
			s.log.Info().Str("from", model).Str("to", next).Msg("active model advanced after not-found")
		}
	}

	return Reply{
		Text:        catalog.PickFallback(message),
		Model:       s.active.Get(),
		ErrorMsg:    "upstream unavailable",
		FromCatalog: true,
	}
}

// AsteroidInfo asks the active model for a structured five-section briefing on
// the named asteroid, degrading to the static fact catalog on failure.
func (s *Service) AsteroidInfo(ctx context.Context, name string) Reply {
	model := s.active.Get()
	callCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	trimmed := strings.TrimSpace(name)
	start := time.Now()
	result, err := s.upstream.Generate(callCtx, fmt.Sprintf(asteroidPrompt, trimmed), model, lookupParams)
	metrics.ObserveUpstreamCall("asteroid_info", model, time.Since(start), err)
	if err == nil {
		return Reply{Text: result.Text, Success: true, Model: model, Tokens: result.TotalTokens}
	}

	s.log.Warn().Err(err).Str("asteroid", trimmed).Msg("asteroid briefing failed, using local catalog")

	metrics.FallbackServedTotal.WithLabelValues("asteroid_info").Inc()
	sheet, _ := catalog.LookupAsteroid(trimmed)
	return Reply{Text: sheet, Model: model, ErrorMsg: "answered from local knowledge base", FromCatalog: true}
}

// TestResult is the outcome of an explicit model test.
type TestResult struct {
	Model       string
	Response    string
	TriedModels []string
}

// TestModel probes the active model and, on failure, walks the fallback list
// with a short per-attempt timeout, promoting the first model that answers.
// This is the only operation that may surface a hard error: when every
// candidate fails.
func (s *Service) TestModel(ctx context.Context) (*TestResult, error) {
	active := s.active.Get()
	tried := []string{active}

	if text, err := s.probe(ctx, active, testTimeout); err == nil {
		return &TestResult{Model: active, Response: text, TriedModels: tried}, nil
	}

	for _, candidate := range catalog.FallbackModels() {
		if candidate == active {
			continue
		}
		tried = append(tried, candidate)
		text, err := s.probe(ctx, candidate, probeTimeout)
		if err != nil {
			continue
		}
		s.active.Set(candidate)
		s.log.Info().Str("model", candidate).Msg("fallback model promoted to active")
		return &TestResult{Model: candidate, Response: text, TriedModels: tried}, nil
	}

	return &TestResult{TriedModels: tried}, platformerrors.NewError(
		ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExhausted,
		"all models exhausted", nil)
}

// QuickResult reports the outcome of a low-cost upstream probe.
type QuickResult struct {
	Success      bool
	Status       string
	Response     string
	ResponseTime time.Duration
}

// QuickTest fires a short low-temperature probe at the active model. It never
// mutates the active model and never hard-fails.
func (s *Service) QuickTest(ctx context.Context) QuickResult {
	start := time.Now()
	text, err := s.probe(ctx, s.active.Get(), quickTimeout)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Warn().Err(err).Msg("quick test failed")
		return QuickResult{Status: "degraded", ResponseTime: elapsed}
	}
	return QuickResult{Success: true, Status: "ok", Response: text, ResponseTime: elapsed}
}

// Echo wraps the message in fixed decorative text. Pure local transform.
func (s *Service) Echo(message string) string {
	if strings.TrimSpace(message) == "" {
		message = "silence from mission control"
	}
	return fmt.Sprintf("📡 Cosmic Watch relay: %s — transmission received loud and clear.", message)
}

func (s *Service) probe(ctx context.Context, model string, timeout time.Duration) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	result, err := s.upstream.Generate(callCtx, "Reply with the single word OK.", model, probeParams)
	metrics.ObserveUpstreamCall("probe", model, time.Since(start), err)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}
