package chat

type postMessageRequest struct {
	RoomID  string `json:"room_id"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type postEmojiRequest struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
	Emoji  string `json:"emoji"`
}

type postResponse struct {
	Status string `json:"status"`
	Kind   string `json:"type"`
}
