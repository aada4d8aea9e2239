package model

import (
	"sync"
	"time"

	"github.com/benbeisheim/console-chess/internal/chess"
)

type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// MatchFoundEvent tells a queued player which game and side they were given.
type MatchFoundEvent struct {
	GameID string      `json:"game_id"`
	Color  chess.Color `json:"color"`
}

// Queue is a FIFO of players waiting for an opponent.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	if playerID == "" {
		return ErrPlayerNotInGame
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return ErrAlreadyQueued
		}
	}

	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// NextPair removes and returns the two players who have waited longest.
func (q *Queue) NextPair() (QueuedPlayer, QueuedPlayer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	p1, p2 := q.players[0], q.players[1]
	q.players = q.players[2:]
	return p1, p2, true
}

// Requeue puts players back at the head of the queue in the given order.
func (q *Queue) Requeue(players ...QueuedPlayer) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.players = append(append([]QueuedPlayer{}, players...), q.players...)
}

func (q *Queue) Contains(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
