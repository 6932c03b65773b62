package db

import (
	"context"
	"testing"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/util"
	"github.com/stretchr/testify/require"
)

func TestValidateEmojiSettings(t *testing.T) {
	testCases := []struct {
		name     string
		settings []EmojiSettingInput
		wantErr  error
	}{
		{
			name:     "OK",
			settings: []EmojiSettingInput{{Emoji: "smile", Category: " cat "}, {Emoji: "thumbsup", Category: "classic"}},
		},
		{
			name:     "Empty",
			settings: nil,
		},
		{
			name:     "UnknownEmoji",
			settings: []EmojiSettingInput{{Emoji: "bogus", Category: "cat"}},
			wantErr:  ErrUnknownEmoji,
		},
		{
			name:     "Duplicate",
			settings: []EmojiSettingInput{{Emoji: "smile", Category: "a"}, {Emoji: "smile", Category: "b"}},
			wantErr:  ErrDuplicateSetting,
		},
		{
			name:     "BlankCategory",
			settings: []EmojiSettingInput{{Emoji: "smile", Category: "  "}},
			wantErr:  ErrInvalidCategory,
		},
		{
			name:     "PathCategory",
			settings: []EmojiSettingInput{{Emoji: "smile", Category: "../x"}},
			wantErr:  ErrInvalidCategory,
		},
		{
			name:     "LongCategory",
			settings: []EmojiSettingInput{{Emoji: "smile", Category: util.RandomString(MaxCategoryLength + 1)}},
			wantErr:  ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := validateEmojiSettings(ReplaceEmojiSettingsTxParams{UserID: 1, Settings: tc.settings})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				var opErr *OpError
				require.ErrorAs(t, err, &opErr)
				require.Equal(t, KindInvalid, opErr.Kind)
				return
			}

			require.NoError(t, err)
			require.Len(t, params, len(tc.settings))
			for _, p := range params {
				require.EqualValues(t, 1, p.UserID)
			}
		})
	}
}

func TestValidateEmojiSettings_TrimsCategory(t *testing.T) {
	params, err := validateEmojiSettings(ReplaceEmojiSettingsTxParams{
		UserID:   1,
		Settings: []EmojiSettingInput{{Emoji: "smile", Category: " cat "}},
	})
	require.NoError(t, err)
	require.Equal(t, "cat", params[0].Category)
}

func TestToEmojiSettings(t *testing.T) {
	rows := []EmojiSetting{
		{UserID: 1, Emoji: "smile", Category: "cat"},
		{UserID: 1, Emoji: "removed-emoji", Category: "cat"},
		{UserID: 1, Emoji: "lol", Category: "retro"},
	}

	got := toEmojiSettings(rows)
	require.Equal(t, []bbcode.EmojiSetting{
		{Type: bbcode.EmojiSmile, Category: "cat", UserID: 1},
		{Type: bbcode.EmojiLaugh, Category: "retro", UserID: 1},
	}, got)

	require.NotNil(t, toEmojiSettings(nil))
}

func TestReplaceEmojiSettingsTx(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()
	userID := util.RandomInt(1, 1_000_000_000)

	settings, err := store.ReplaceEmojiSettingsTx(ctx, ReplaceEmojiSettingsTxParams{
		UserID:   userID,
		Settings: []EmojiSettingInput{{Emoji: "smile", Category: "cat"}, {Emoji: "thumbsup", Category: "classic"}},
	})
	require.NoError(t, err)
	require.Len(t, settings, 2)

	got, err := store.GetEmojiSettings(ctx, userID)
	require.NoError(t, err)
	require.ElementsMatch(t, settings, got)

	// replacing drops the settings missing from the new list
	settings, err = store.ReplaceEmojiSettingsTx(ctx, ReplaceEmojiSettingsTxParams{
		UserID:   userID,
		Settings: []EmojiSettingInput{{Emoji: "smile", Category: "dog"}},
	})
	require.NoError(t, err)

	got, err = store.GetEmojiSettings(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, settings, got)
	require.Equal(t, "dog", got[0].Category)
	require.Equal(t, "dog", bbcode.ResolveEmoji(bbcode.EmojiSmile, got))
	require.Equal(t, bbcode.ReactionCategory, bbcode.ResolveEmoji(bbcode.EmojiThumbsUp, got))

	// a failed replace leaves the stored settings untouched
	_, err = store.ReplaceEmojiSettingsTx(ctx, ReplaceEmojiSettingsTxParams{
		UserID:   userID,
		Settings: []EmojiSettingInput{{Emoji: "bogus", Category: "x"}},
	})
	require.Error(t, err)

	got, err = store.GetEmojiSettings(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, settings, got)
}

func TestGetEmojiSettings_Empty(t *testing.T) {
	store := requireStore(t)

	got, err := store.GetEmojiSettings(context.Background(), -1)
	require.NoError(t, err)
	require.Empty(t, got)
}
