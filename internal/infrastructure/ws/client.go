package ws

import (
	"github.com/gorilla/websocket"
)

// Client is one user's channel into one room.
type Client struct {
	conn   roomConn
	RoomID string
	UserID string
}

func NewClient(conn *websocket.Conn, roomID, userID string) *Client {
	return &Client{
		conn:   newConnWrapper(conn),
		RoomID: roomID,
		UserID: userID,
	}
}

func (c *Client) send(data []byte) error {
	return c.conn.WriteRaw(data)
}

func (c *Client) sendJSON(v any) error {
	return c.conn.WriteJSON(v)
}

// ReadLoop serves the connection until the channel closes or errors. The
// leave routine always runs before the loop exits, however abrupt the
// closure.
func (c *Client) ReadLoop(hub *Hub) {
	defer func() {
		hub.Leave(c.RoomID, c.UserID)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				hub.logger.Debugf("ws read error (room %s, user %s): %v", c.RoomID, c.UserID, err)
			}
			return
		}

		hub.HandleInbound(c.RoomID, c.UserID, raw)
	}
}
