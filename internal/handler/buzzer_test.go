package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bergtobias/quiz/internal/game"
	"github.com/bergtobias/quiz/internal/room"
	"github.com/bergtobias/quiz/internal/ws"
)

func TestHandlePressBuzzer_WinnerBroadcast(t *testing.T) {
	router, registry, _ := setupRouter()
	host := testClient("c1")
	guest := testClient("c2")

	code := createRoom(t, router, host, 2, "Alice")
	joinRoom(t, router, host, code, "Alice", true)
	bob := joinRoom(t, router, guest, code, "Bob", false)
	drain(host)
	drain(guest)

	send(t, router, guest, ws.TypePressBuzzer, pressBuzzerRequest{
		RoomCode: code,
		PlayerID: bob.ID,
	})

	// Both members see the win, then the locked snapshot.
	for _, client := range []*ws.Client{host, guest} {
		msg := recv(t, client)
		require.Equal(t, ws.TypeBuzzerPressed, msg.Type)

		var event game.BuzzerEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, "Bob", event.PlayerName)

		msg = recv(t, client)
		require.Equal(t, ws.TypeRoomState, msg.Type)

		var snap room.Snapshot
		require.NoError(t, json.Unmarshal(msg.Data, &snap))
		assert.True(t, snap.BuzzerLocked)
		require.NotNil(t, snap.FirstBuzz)
		assert.Equal(t, "Bob", snap.FirstBuzz.PlayerName)
	}

	assert.True(t, registry.Get(code).BuzzerLocked())
}

func TestHandlePressBuzzer_LateAndUnknownPressesSilent(t *testing.T) {
	router, registry, _ := setupRouter()
	host := testClient("c1")
	guest := testClient("c2")

	code := createRoom(t, router, host, 2, "Alice")
	alice := joinRoom(t, router, host, code, "Alice", true)
	bob := joinRoom(t, router, guest, code, "Bob", false)
	drain(host)
	drain(guest)

	send(t, router, guest, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: bob.ID})
	drain(host)
	drain(guest)

	// Second press after the lock: no reply, no broadcast, no ledger entry.
	send(t, router, host, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: alice.ID})
	assert.Empty(t, drain(host))
	assert.Empty(t, drain(guest))
	assert.Equal(t, 1, registry.Get(code).LedgerLen())

	// Unknown player and unknown room presses are equally silent.
	send(t, router, host, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: "nobody"})
	send(t, router, host, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: "NOPE99", PlayerID: alice.ID})
	assert.Empty(t, drain(host))

	first, present := registry.Get(code).FirstBuzz()
	require.True(t, present)
	assert.Equal(t, "Bob", first.PlayerName)
}

func TestHandleResetBuzzer_HostOnly(t *testing.T) {
	router, registry, _ := setupRouter()
	host := testClient("c1")
	guest := testClient("c2")

	code := createRoom(t, router, host, 2, "Alice")
	joinRoom(t, router, host, code, "Alice", true)
	bob := joinRoom(t, router, guest, code, "Bob", false)
	drain(host)
	drain(guest)

	send(t, router, guest, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: bob.ID})
	drain(host)
	drain(guest)

	// Bob is not the host: error back, state untouched.
	send(t, router, guest, ws.TypeResetBuzzer, resetBuzzerRequest{RoomCode: code})
	msg := recv(t, guest)
	assert.Equal(t, ws.TypeError, msg.Type)
	assert.True(t, registry.Get(code).BuzzerLocked())

	// A stranger who never joined gets the same answer.
	stranger := testClient("c3")
	send(t, router, stranger, ws.TypeResetBuzzer, resetBuzzerRequest{RoomCode: code})
	msg = recv(t, stranger)
	assert.Equal(t, ws.TypeError, msg.Type)

	// Alice resets: round reopens and everyone sees the open snapshot.
	send(t, router, host, ws.TypeResetBuzzer, resetBuzzerRequest{RoomCode: code})
	msg = recv(t, guest)
	require.Equal(t, ws.TypeRoomState, msg.Type)

	var snap room.Snapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	assert.False(t, snap.BuzzerLocked)
	assert.Nil(t, snap.FirstBuzz)
	assert.Empty(t, snap.BuzzLedger)
	assert.False(t, registry.Get(code).BuzzerLocked())
}

// TestBuzzerSession walks one complete session: create, host and guest
// join opposite teams, the guest wins the race, a late press is lost,
// the host reopens the round.
func TestBuzzerSession(t *testing.T) {
	router, registry, _ := setupRouter()
	aliceConn := testClient("c1")
	bobConn := testClient("c2")

	code := createRoom(t, router, aliceConn, 2, "Alice")
	r := registry.Get(code)
	require.NotNil(t, r)
	assert.Equal(t, "Alice", r.HostName)
	assert.Equal(t, 0, r.PlayerCount())

	alice := joinRoom(t, router, aliceConn, code, "Alice", true)
	assert.Equal(t, 1, alice.Team)
	assert.True(t, alice.IsHost)

	bob := joinRoom(t, router, bobConn, code, "Bob", false)
	assert.Equal(t, 2, bob.Team, "team counts were [1,0], so Bob lands on team 2")
	drain(aliceConn)
	drain(bobConn)

	send(t, router, bobConn, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: bob.ID})
	assert.True(t, r.BuzzerLocked())
	first, present := r.FirstBuzz()
	require.True(t, present)
	assert.Equal(t, "Bob", first.PlayerName)
	drain(aliceConn)
	drain(bobConn)

	send(t, router, aliceConn, ws.TypePressBuzzer, pressBuzzerRequest{RoomCode: code, PlayerID: alice.ID})
	assert.Equal(t, 1, r.LedgerLen())

	send(t, router, aliceConn, ws.TypeResetBuzzer, resetBuzzerRequest{RoomCode: code})
	assert.False(t, r.BuzzerLocked())
	assert.Equal(t, 0, r.LedgerLen())
	_, present = r.FirstBuzz()
	assert.False(t, present)
}
