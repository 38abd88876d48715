package ws

// Inbound and outbound payload type discriminators. Chat and emoji are the
// only rate-limited classes; presence, rate-limit notices and video sync
// bypass the cooldown gate.
const (
	TypeChat      = "chat"
	TypeEmoji     = "emoji"
	TypeVideoSync = "video_sync"

	TypeUserJoined = "user_joined"
	TypeUserLeft   = "user_left"
	TypeRateLimit  = "rate_limit"
)
