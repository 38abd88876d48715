package users

type registerRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type loginRequest struct {
	UserID string `json:"user_id"`
}

type userResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
