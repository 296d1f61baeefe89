package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Selection tokens carry the full resumption state for a game drill-down
// across the gap between the listing message and the button press:
// "game_details_{date}_{index}". The "_" field delimiter never occurs
// inside an ISO-8601 date, so splitting stays unambiguous. Telegram caps
// callback data at 64 bytes; the longest token is well under that.

const gameTokenPrefix = "game_details"

var errBadToken = errors.New("malformed selection token")

func encodeGameToken(date string, index int) string {
	return fmt.Sprintf("%s_%s_%d", gameTokenPrefix, date, index)
}

// decodeGameToken reverses encodeGameToken. Tokens minted before the index
// field existed carry only a date and decode with index 0; an unparsable
// index degrades to 0 rather than failing the callback.
func decodeGameToken(token string) (string, int, error) {
	rest, ok := strings.CutPrefix(token, gameTokenPrefix+"_")
	if !ok || rest == "" {
		return "", 0, errBadToken
	}
	date, indexPart, found := strings.Cut(rest, "_")
	if !found {
		return rest, 0, nil
	}
	index, err := strconv.Atoi(indexPart)
	if err != nil || index < 0 {
		index = 0
	}
	return date, index, nil
}
