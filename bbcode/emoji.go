package bbcode

// ReactionCategory is the default image category of the reaction emoticons.
const ReactionCategory = "reaction"

// EmojiSetting is a user's preference of the image category for an emoticon.
// The settings are owned and persisted by the settings store, the engine only reads them.
type EmojiSetting struct {
	Type     Kind   `json:"type"`
	Category string `json:"category"`
	UserID   int64  `json:"user_id"`
}

// ResolveEmoji returns the image category of the emoticon kind.
//
// The category of the setting with the same kind wins. Without one, reactions fall back
// to ReactionCategory and every other emoticon has no category.
func ResolveEmoji(kind Kind, settings []EmojiSetting) string {
	for _, s := range settings {
		if s.Type == kind {
			return s.Category
		}
	}

	if kind.IsReaction() {
		return ReactionCategory
	}

	return ""
}
