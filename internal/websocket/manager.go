package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Manager fans collection-change notifications out to an owner's open
// connections. Traffic is one-way: clients only listen.
type Manager struct {
	clients        map[string]*Client
	ownerIndex     map[string]map[string]bool
	clientsMutex   sync.RWMutex
	Register       chan *Client
	Unregister     chan *Client
	maxConnPerUser int
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
}

func NewManager(maxConnPerUser int, writeWait, pongWait, pingPeriod time.Duration) *Manager {
	return &Manager{
		clients:        make(map[string]*Client),
		ownerIndex:     make(map[string]map[string]bool),
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		maxConnPerUser: maxConnPerUser,
		writeWait:      writeWait,
		pongWait:       pongWait,
		pingPeriod:     pingPeriod,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if m.ownerIndex[client.OwnerID] == nil {
		m.ownerIndex[client.OwnerID] = make(map[string]bool)
	}

	if len(m.ownerIndex[client.OwnerID]) >= m.maxConnPerUser {
		log.Printf("max connections reached for owner %s", client.OwnerID)
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.ownerIndex[client.OwnerID][client.ID] = true

	log.Printf("client registered: %s (owner: %s)", client.ID, client.OwnerID)
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		delete(m.ownerIndex[client.OwnerID], client.ID)

		if len(m.ownerIndex[client.OwnerID]) == 0 {
			delete(m.ownerIndex, client.OwnerID)
		}

		close(client.Send)
		log.Printf("client unregistered: %s", client.ID)
	}
}

// BroadcastToOwner pushes a message to every open connection of one
// owner. Other owners never see it.
func (m *Manager) BroadcastToOwner(ownerID string, message *Message) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	clientIDs, exists := m.ownerIndex[ownerID]
	if !exists {
		return nil
	}

	for clientID := range clientIDs {
		client := m.clients[clientID]
		select {
		case client.Send <- messageBytes:
		default:
			log.Printf("client %s send buffer full, closing connection", clientID)
			go func(c *Client) { m.Unregister <- c }(client)
		}
	}

	return nil
}

func (m *Manager) OwnerConnections(ownerID string) int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	if clients, exists := m.ownerIndex[ownerID]; exists {
		return len(clients)
	}
	return 0
}
