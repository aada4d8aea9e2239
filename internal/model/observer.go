package model

import "sync"

// SyncObserver serializes writes to an Observer. A websocket conn supports
// one concurrent writer, and both state pushes and error replies target it.
type SyncObserver struct {
	mu   sync.Mutex
	conn Observer
}

func NewSyncObserver(conn Observer) *SyncObserver {
	return &SyncObserver{conn: conn}
}

func (s *SyncObserver) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *SyncObserver) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(messageType, data)
}

func (s *SyncObserver) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// wraps reports whether conn is s itself or the observer s writes to.
func (s *SyncObserver) wraps(conn Observer) bool {
	if other, ok := conn.(*SyncObserver); ok {
		return other == s
	}
	return s.conn == conn
}
