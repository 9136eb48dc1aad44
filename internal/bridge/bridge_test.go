package bridge

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// After a connect_error fills the buffer, a reconnect's connect event must
// not block the socket callback goroutine.
func TestOffer_NeverBlocksOnFullChannel(t *testing.T) {
	connectChan := make(chan error, 1)
	connectErr := errors.New("connect_error")

	require.True(t, offer(connectChan, connectErr))

	done := make(chan bool, 1)
	go func() {
		done <- offer(connectChan, nil)
	}()
	select {
	case sent := <-done:
		assert.False(t, sent)
	case <-time.After(time.Second):
		t.Fatal("offer blocked on a full channel")
	}

	assert.Equal(t, connectErr, <-connectChan)
	assert.True(t, offer(connectChan, nil))
	assert.NoError(t, <-connectChan)
}

func TestOffer_DisconnectReason(t *testing.T) {
	closed := make(chan string, 1)
	assert.True(t, offer(closed, "transport close"))
	assert.False(t, offer(closed, "io server disconnect"))
	assert.Equal(t, "transport close", <-closed)
}
