package pagination

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	PrevButtonPrefix = "pagination_prev|"
	NextButtonPrefix = "pagination_next|"
)

// Direction is the way a navigation button moves the cursor.
type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// navigationComponents returns the Previous/Next row for the page at cursor,
// or nil when there is only one page.
func navigationComponents(sessionID string, cursor, total int) []discordgo.MessageComponent {
	if total <= 1 {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "⬅️ Previous",
					Style:    discordgo.PrimaryButton,
					CustomID: PrevButtonPrefix + sessionID,
					Disabled: cursor == 0,
				},
				discordgo.Button{
					Label:    "➡️ Next",
					Style:    discordgo.PrimaryButton,
					CustomID: NextButtonPrefix + sessionID,
					Disabled: cursor == total-1,
				},
			},
		},
	}
}

// ParseCustomID extracts the direction and session id from a button id.
func ParseCustomID(customID string) (Direction, string, error) {
	var direction Direction
	var sessionID string
	switch {
	case strings.HasPrefix(customID, PrevButtonPrefix):
		direction, sessionID = DirectionPrevious, strings.TrimPrefix(customID, PrevButtonPrefix)
	case strings.HasPrefix(customID, NextButtonPrefix):
		direction, sessionID = DirectionNext, strings.TrimPrefix(customID, NextButtonPrefix)
	default:
		return "", "", fmt.Errorf("invalid CustomID format: %s", customID)
	}
	if sessionID == "" {
		return "", "", fmt.Errorf("missing session id in CustomID: %s", customID)
	}
	return direction, sessionID, nil
}
