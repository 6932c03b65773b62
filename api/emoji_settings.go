package api

import (
	"net/http"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	db "github.com/Drolfothesgnir/bbforum/db/sqlc"
	"github.com/Drolfothesgnir/bbforum/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EmojiSetting is the public form of a user's emoji preference.
type EmojiSetting struct {
	Emoji    string `json:"emoji"`
	Category string `json:"category"`
}

type EmojiSettingsResponse struct {
	UserID   int64          `json:"user_id"`
	Settings []EmojiSetting `json:"settings"`
}

type UpdateEmojiSettingsRequest struct {
	Settings []EmojiSettingRequest `json:"settings" binding:"max=64,dive"`
}

type EmojiSettingRequest struct {
	Emoji    string `json:"emoji" binding:"required,max=32"`
	Category string `json:"category" binding:"required,max=64"`
}

// Helper function to map the engine settings into an API response
func createEmojiSettingsResponse(userID int64, settings []bbcode.EmojiSetting) EmojiSettingsResponse {
	resp := EmojiSettingsResponse{
		UserID:   userID,
		Settings: make([]EmojiSetting, 0, len(settings)),
	}

	for _, s := range settings {
		resp.Settings = append(resp.Settings, EmojiSetting{
			Emoji:    bbcode.EmojiName(s.Type),
			Category: s.Category,
		})
	}

	return resp
}

func (s *Service) getEmojiSettings(ctx *gin.Context) {
	userID := extractUserIDFromCtx(ctx)

	settings, err := s.store.GetEmojiSettings(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("cannot get emoji settings")
		ctx.JSON(storeErrorStatus(err), NewErrorResponse(ErrInternal))
		return
	}

	ctx.JSON(http.StatusOK, createEmojiSettingsResponse(userID, settings))
}

func (s *Service) updateEmojiSettings(ctx *gin.Context) {
	// get token after auth middleware use
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req UpdateEmojiSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	arg := db.ReplaceEmojiSettingsTxParams{
		UserID:   authPayload.UserID,
		Settings: make([]db.EmojiSettingInput, len(req.Settings)),
	}
	for i, setting := range req.Settings {
		arg.Settings[i] = db.EmojiSettingInput{Emoji: setting.Emoji, Category: setting.Category}
	}

	settings, err := s.store.ReplaceEmojiSettingsTx(ctx, arg)
	if err != nil {
		status := storeErrorStatus(err)
		if status == http.StatusBadRequest {
			ctx.JSON(status, NewErrorResponse(ErrInvalidParams, ErrorField{"settings", err.Error()}))
			return
		}

		log.Error().Err(err).Int64("user_id", authPayload.UserID).Msg("cannot update emoji settings")
		ctx.JSON(status, NewErrorResponse(ErrInternal))
		return
	}

	ctx.JSON(http.StatusOK, createEmojiSettingsResponse(authPayload.UserID, settings))
}
