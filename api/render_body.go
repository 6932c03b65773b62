package api

import (
	"io"
	"net/http"

	"github.com/Drolfothesgnir/bbforum/content"
	"github.com/Drolfothesgnir/bbforum/markup"
	"github.com/gin-gonic/gin"
)

type RenderBodyResponse struct {
	Schema   string                    `json:"schema"`
	Version  int32                     `json:"version"`
	Sections []content.RenderedSection `json:"sections"`
}

// renderBody validates a whole post body and renders every text in it.
// The output is always sanitized.
func (s *Service) renderBody(ctx *gin.Context) {
	// reading one byte over the limit is enough to tell the body is too long
	raw, err := io.ReadAll(io.LimitReader(ctx.Request.Body, int64(s.config.MaxInputLength)+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidBody))
		return
	}

	if !s.checkInputLength(ctx, "body", string(raw)) {
		return
	}

	schema, err := content.NewSchema(ctx.Query("schema"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ErrorField{"schema", err.Error()}))
		return
	}

	if _, err := schema.Parse(raw); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidBody, ErrorField{"body", err.Error()}))
		return
	}

	viewer := viewerFromCtx(ctx)
	settings := s.viewerEmojiSettings(ctx, viewer)

	sections := schema.Render(func(text string, format markup.Format) string {
		return s.renderText(text, format, settings, viewer, true)
	})

	ctx.JSON(http.StatusOK, RenderBodyResponse{
		Schema:   schema.Name(),
		Version:  schema.Version(),
		Sections: sections,
	})
}
