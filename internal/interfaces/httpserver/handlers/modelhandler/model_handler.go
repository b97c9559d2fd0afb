package modelhandler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/domain/catalog"
	"cosmic-watch/services/astro-api/internal/domain/chat"
	"cosmic-watch/services/astro-api/internal/infrastructure/gemini"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	modelresponses "cosmic-watch/services/astro-api/internal/interfaces/httpserver/responses/model"
)

// excludedVariants are model id fragments that never serve text chat, even
// when the upstream metadata claims generateContent support.
var excludedVariants = []string{"embedding", "imagen", "veo", "audio", "tts"}

// ModelHandler exposes the upstream model listing.
type ModelHandler struct {
	upstream    *gemini.Client
	chatService *chat.Service
	log         zerolog.Logger
}

func NewModelHandler(upstream *gemini.Client, chatService *chat.Service) *ModelHandler {
	return &ModelHandler{
		upstream:    upstream,
		chatService: chatService,
		log:         logger.Component("modelhandler"),
	}
}

// List handles GET /models. On upstream failure the static fallback-model
// list is returned instead of an error.
func (h *ModelHandler) List(c *gin.Context) {
	models, err := h.upstream.ListModels(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("model listing failed, returning static list")
		c.JSON(http.StatusOK, modelresponses.ListFailure{
			Error:          "upstream model listing unavailable",
			FallbackModels: catalog.FallbackModels(),
		})
		return
	}

	usable := FilterChatModels(models)
	SortFlashFirst(usable)

	infos := make([]modelresponses.ModelInfo, 0, len(usable))
	for _, m := range usable {
		infos = append(infos, modelresponses.ModelInfo{
			Name:        strings.TrimPrefix(m.Name, "models/"),
			DisplayName: m.DisplayName,
			Description: m.Description,
		})
	}

	c.JSON(http.StatusOK, modelresponses.ListResponse{
		Success:           true,
		Models:            infos,
		Total:             len(infos),
		CurrentModel:      h.chatService.ActiveModel(),
		RecommendedModels: catalog.FallbackModels(),
	})
}

// FilterChatModels keeps models that support text generation and are not an
// embedding/image/audio/video variant.
func FilterChatModels(models []gemini.Model) []gemini.Model {
	usable := make([]gemini.Model, 0, len(models))
	for _, m := range models {
		if !supportsGeneration(m) {
			continue
		}
		if isExcludedVariant(m.Name) {
			continue
		}
		usable = append(usable, m)
	}
	return usable
}

// SortFlashFirst orders models so ids containing "flash" come before all
// others, ties broken lexicographically.
func SortFlashFirst(models []gemini.Model) {
	sort.Slice(models, func(i, j int) bool {
		iFlash := strings.Contains(strings.ToLower(models[i].Name), "flash")
		jFlash := strings.Contains(strings.ToLower(models[j].Name), "flash")
		if iFlash != jFlash {
			return iFlash
		}
		return models[i].Name < models[j].Name
	})
}

func supportsGeneration(m gemini.Model) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

func isExcludedVariant(name string) bool {
	lowered := strings.ToLower(name)
	for _, fragment := range excludedVariants {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
