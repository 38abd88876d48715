package expenses

type addExpenseRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
	Weight float64 `json:"weight"`
}

type balanceLine struct {
	UserID string `json:"user_id"`
	Paid   string `json:"paid"`
	Owed   string `json:"owed"`
	Net    string `json:"net"`
}

type balancesResponse struct {
	RoomID   string        `json:"room_id"`
	Total    string        `json:"total"`
	Balances []balanceLine `json:"balances"`
}
