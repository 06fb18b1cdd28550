package orderfeed

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
)

// Client is one websocket subscriber. Room is the user id whose orders
// the client wants to hear about.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub fans placed orders out to the websocket subscribers of each user.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	quit       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			// the broadcast overflow path may have already dropped the
			// client and closed Send; only close for current members
			if conns := h.rooms[c.Room]; conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and closes every subscriber channel.
func (h *Hub) Stop() {
	close(h.quit)
}

// outboundPayload is what subscribers receive for each placed order.
type outboundPayload struct {
	Action string       `json:"action"`
	Order  models.Order `json:"order"`
}

// PublishOrder broadcasts a freshly placed order to the owner's room.
func (h *Hub) PublishOrder(order models.Order) {
	data, err := json.Marshal(outboundPayload{Action: "order_placed", Order: order})
	if err != nil {
		log.Println("PublishOrder marshal error:", err)
		return
	}

	select {
	case h.broadcast <- broadcastMsg{Room: order.UserID, Data: data}:
	case <-h.quit:
	}
}
