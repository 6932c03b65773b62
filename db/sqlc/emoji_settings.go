package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/bbforum/bbcode"
)

const (
	opGetEmojiSettings     = "get-emoji-settings"
	opReplaceEmojiSettings = "replace-emoji-settings"
)

// MaxCategoryLength is the longest emoji category stored.
const MaxCategoryLength = 64

// EmojiSettingInput is a single emoji preference as the user submits it.
type EmojiSettingInput struct {
	Emoji    string `json:"emoji"`
	Category string `json:"category"`
}

type ReplaceEmojiSettingsTxParams struct {
	UserID   int64               `json:"user_id"`
	Settings []EmojiSettingInput `json:"settings"`
}

// GetEmojiSettings returns the user's emoji preferences in the form the renderer reads them.
// Rows naming an emoji the renderer no longer knows are skipped.
func (store *SQLStore) GetEmojiSettings(ctx context.Context, userID int64) ([]bbcode.EmojiSetting, error) {
	rows, err := store.listEmojiSettings(ctx, userID)
	if err != nil {
		return nil, sqlError(
			opGetEmojiSettings,
			opDetails{userID: userID, entity: entEmojiSetting},
			err,
		)
	}

	return toEmojiSettings(rows), nil
}

// ReplaceEmojiSettingsTx replaces all the user's emoji preferences with the given ones
// within a single transaction. Returns KindInvalid if any of the settings is malformed.
func (store *SQLStore) ReplaceEmojiSettingsTx(ctx context.Context, arg ReplaceEmojiSettingsTxParams) ([]bbcode.EmojiSetting, error) {
	params, err := validateEmojiSettings(arg)
	if err != nil {
		return nil, err
	}

	var rows []EmojiSetting

	err = store.execTx(ctx, func(q *Queries) error {
		err := q.deleteEmojiSettings(ctx, arg.UserID)
		if err != nil {
			return sqlError(
				opReplaceEmojiSettings,
				opDetails{userID: arg.UserID, entity: entEmojiSetting},
				err,
			)
		}

		for _, p := range params {
			row, err := q.upsertEmojiSetting(ctx, p)
			if err != nil {
				return sqlError(
					opReplaceEmojiSettings,
					opDetails{userID: arg.UserID, entity: entEmojiSetting, input: p.Emoji},
					err,
				)
			}
			rows = append(rows, row)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return toEmojiSettings(rows), nil
}

func validateEmojiSettings(arg ReplaceEmojiSettingsTxParams) ([]upsertEmojiSettingParams, error) {
	params := make([]upsertEmojiSettingParams, 0, len(arg.Settings))
	seen := make(map[bbcode.Kind]bool, len(arg.Settings))

	for _, s := range arg.Settings {
		kind, ok := bbcode.EmojiByName(s.Emoji)
		if !ok {
			return nil, newOpError(
				opReplaceEmojiSettings,
				KindInvalid,
				entEmojiSetting,
				fmt.Errorf("%w: %q", ErrUnknownEmoji, s.Emoji),
				withUser(arg.UserID),
				withInput(s.Emoji),
			)
		}

		if seen[kind] {
			return nil, newOpError(
				opReplaceEmojiSettings,
				KindInvalid,
				entEmojiSetting,
				fmt.Errorf("%w: %q", ErrDuplicateSetting, s.Emoji),
				withUser(arg.UserID),
				withInput(s.Emoji),
			)
		}
		seen[kind] = true

		category := strings.TrimSpace(s.Category)
		if category == "" || len(category) > MaxCategoryLength || strings.ContainsAny(category, "/\\") {
			return nil, newOpError(
				opReplaceEmojiSettings,
				KindInvalid,
				entEmojiSetting,
				fmt.Errorf("%w: %q", ErrInvalidCategory, s.Category),
				withUser(arg.UserID),
				withInput(s.Category),
			)
		}

		params = append(params, upsertEmojiSettingParams{
			UserID:   arg.UserID,
			Emoji:    bbcode.EmojiName(kind),
			Category: category,
		})
	}

	return params, nil
}

func toEmojiSettings(rows []EmojiSetting) []bbcode.EmojiSetting {
	settings := make([]bbcode.EmojiSetting, 0, len(rows))

	for _, row := range rows {
		kind, ok := bbcode.EmojiByName(row.Emoji)
		if !ok {
			continue
		}

		settings = append(settings, bbcode.EmojiSetting{
			Type:     kind,
			Category: row.Category,
			UserID:   row.UserID,
		})
	}

	return settings
}
