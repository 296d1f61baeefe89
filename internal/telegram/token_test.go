package telegram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameTokenRoundTrip(t *testing.T) {
	dates := []string{"2024-03-07", "2023-12-31", "1999-01-01"}
	for _, date := range dates {
		for i := 0; i < 1000; i++ {
			token := encodeGameToken(date, i)
			gotDate, gotIndex, err := decodeGameToken(token)
			require.NoError(t, err, "token %q", token)
			require.Equal(t, date, gotDate)
			require.Equal(t, i, gotIndex)
		}
	}
}

func TestDecodeLegacyToken(t *testing.T) {
	// Tokens issued before the index field existed.
	date, index, err := decodeGameToken("game_details_2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", date)
	assert.Equal(t, 0, index)
}

func TestDecodeDegradesBadIndex(t *testing.T) {
	for _, token := range []string{
		"game_details_2024-03-07_abc",
		"game_details_2024-03-07_-4",
	} {
		date, index, err := decodeGameToken(token)
		require.NoError(t, err, token)
		assert.Equal(t, "2024-03-07", date)
		assert.Equal(t, 0, index, token)
	}
}

func TestDecodeRejectsForeignPayload(t *testing.T) {
	for _, token := range []string{"", "game_details", "game_details_", "something_else", "details_2024-03-07_1"} {
		_, _, err := decodeGameToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestTokenFitsCallbackDataLimit(t *testing.T) {
	token := encodeGameToken("2024-03-07", 999)
	assert.LessOrEqual(t, len(token), 64, fmt.Sprintf("token %q exceeds Telegram's callback data cap", token))
}
