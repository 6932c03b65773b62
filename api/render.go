package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/markup"
	"github.com/Drolfothesgnir/bbforum/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RenderRequest struct {
	Text     string `json:"text"`
	Format   string `json:"format" binding:"required,oneof=plaintext bbcode bbcode+html markdown markdown+html"`
	Sanitize *bool  `json:"sanitize"`
}

type RenderResponse struct {
	HTML   string `json:"html"`
	Format string `json:"format"`
	Cached bool   `json:"cached"`
}

// render converts a single text into HTML.
//
// The output is sanitized unless the client explicitly opts out.
// Results are cached, a cache failure never fails the request.
func (s *Service) render(ctx *gin.Context) {
	var req RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if !s.checkInputLength(ctx, "text", req.Text) {
		return
	}

	format, err := markup.ParseFormat(req.Format)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ErrorField{"format", err.Error()}))
		return
	}

	sanitized := req.Sanitize == nil || *req.Sanitize

	viewer := viewerFromCtx(ctx)
	settings := s.viewerEmojiSettings(ctx, viewer)

	cacheFormat := string(format)
	if !sanitized {
		cacheFormat += "|raw"
	}
	key := tmpstore.RenderKey(cacheFormat, viewer != nil, settings, req.Text)

	if s.renderCache != nil {
		cached, err := s.renderCache.GetRender(ctx, key)
		switch {
		case err == nil:
			ctx.JSON(http.StatusOK, RenderResponse{HTML: cached.HTML, Format: string(format), Cached: true})
			return
		case errors.Is(err, tmpstore.ErrCorruptedRender):
			log.Warn().Err(err).Str("key", key).Msg("dropping corrupted render cache entry")
			if err := s.renderCache.DeleteRender(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("render cache delete failed")
			}
		case !errors.Is(err, tmpstore.ErrCacheMiss):
			log.Warn().Err(err).Str("key", key).Msg("render cache read failed")
		}
	}

	out := s.renderText(req.Text, format, settings, viewer, sanitized)

	if s.renderCache != nil {
		data := tmpstore.RenderedText{HTML: out, Format: string(format), CreatedAt: time.Now()}
		if err := s.renderCache.SaveRender(ctx, key, data, s.config.RenderCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("render cache write failed")
		}
	}

	ctx.JSON(http.StatusOK, RenderResponse{HTML: out, Format: string(format)})
}

// renderText runs the markup engine and optionally the sanitizer over the text.
func (s *Service) renderText(
	text string,
	format markup.Format,
	settings []bbcode.EmojiSetting,
	viewer *bbcode.UserRef,
	sanitized bool,
) string {
	out := s.renderer.Render(text, format, settings, viewer)
	if sanitized {
		out = s.sanitizer.Sanitize(out)
	}
	return out
}

// viewerEmojiSettings loads the viewer's emoji settings.
// Anonymous viewers and store failures get the defaults.
func (s *Service) viewerEmojiSettings(ctx *gin.Context, viewer *bbcode.UserRef) []bbcode.EmojiSetting {
	if viewer == nil || s.store == nil {
		return nil
	}

	settings, err := s.store.GetEmojiSettings(ctx, viewer.ID)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", viewer.ID).Msg("cannot load emoji settings, using defaults")
		return nil
	}

	return settings
}

// checkInputLength aborts with 413 if the input exceeds the configured limit.
func (s *Service) checkInputLength(ctx *gin.Context, field string, input string) bool {
	if len(input) <= s.config.MaxInputLength {
		return true
	}

	errField := ErrorField{field, fmt.Sprintf("must be at most %d bytes long", s.config.MaxInputLength)}
	ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLong, errField))
	return false
}
