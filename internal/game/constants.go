package game

const (
	// MinPlayers is the minimum number of players required to start a round
	MinPlayers = 3

	// MaxPlayers caps the roster of one table
	MaxPlayers = 20

	// InboxSize is the buffer size for a table's intent inbox
	InboxSize = 64

	// SSEBufferSize is the buffer size for subscriber channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for sending snapshots to subscribers
	SSETimeoutSeconds = 1
)
