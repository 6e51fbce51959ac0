package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque cursor from the sequence and creation time of the last
// item on a page. The encoding is URL safe so the token can travel as a query parameter.
func EncodeToken(sequence int64, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%d|%s", sequence, createdAt.Format(timeFormat))
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor produced by EncodeToken.
func DecodeToken(token string) (int64, time.Time, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	sequence, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || sequence <= 0 {
		return 0, time.Time{}, fmt.Errorf("invalid pagination token format (sequence parse)")
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return sequence, createdAt, nil
}
