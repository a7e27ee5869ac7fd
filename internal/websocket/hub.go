// Package websocket streams device events to the browsers of the users that
// own the devices.
package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/voltlab/device-hub/internal/domain"
)

type eventEnvelope struct {
	ownerID uint
	payload []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan eventEnvelope
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan eventEnvelope, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case env := <-h.events:
			for client := range h.clients {
				if client.userID != env.ownerID {
					continue
				}
				select {
				case client.send <- env.payload:
				default:
					// Slow consumer, drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Register attaches a client to the hub. Returns false once the hub has
// stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// PublishEvent queues a device event for delivery to sockets owned by
// ownerID. Safe to call from any goroutine; drops the event once the hub is
// stopped.
func (h *Hub) PublishEvent(ownerID uint, event *domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR [websocket.PublishEvent] marshal event: %v", err)
		return
	}

	select {
	case h.events <- eventEnvelope{ownerID: ownerID, payload: payload}:
	case <-h.done:
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}
