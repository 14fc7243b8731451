package socketio_types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zishang520/socket.io/v2/socket"
)

func TestConnections(t *testing.T) {
	s := NewSocketServer()
	first := &socket.Socket{}
	second := &socket.Socket{}

	s.AddConnection("alice", first)
	got, ok := s.GetConnection("alice")
	assert.True(t, ok)
	assert.Same(t, first, got)

	// alice reconnected: the old socket leaving must not drop the new one
	s.AddConnection("alice", second)
	s.RemoveConnection("alice", first)
	assert.Equal(t, 1, s.ConnectionCount())

	s.RemoveConnection("alice", second)
	_, ok = s.GetConnection("alice")
	assert.False(t, ok)
}
