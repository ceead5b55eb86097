package favoriteevents

import "time"

// Topic constants for favorite team events
const (
	FavoriteTeamSetTopic = "favorite.team.set"
)

// FavoriteTeamSetPayload is published after a guild picks a favorite team.
type FavoriteTeamSetPayload struct {
	GuildID    string    `json:"guild_id"`
	ChannelID  string    `json:"channel_id"`
	UserID     string    `json:"user_id"`
	TeamNumber string    `json:"team_number"`
	SetAt      time.Time `json:"set_at"`
}
