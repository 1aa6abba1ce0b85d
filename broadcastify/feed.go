package broadcastify

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
	"github.com/skillsenselab/radiowatch/logger"
)

const feedPath = "/calls/v1/live"

// maxGroupsPerRequest caps how many channel refs ride in one feed request.
// Larger channel sets are split into chunks of this size and the results
// concatenated; the cursor is forwarded from the last chunk that supplied one.
const maxGroupsPerRequest = 5

// FetchCalls returns the calls newly available on the given channel set since
// the cursor. An empty channel set short-circuits without a network call.
// Authentication failures are reported through FetchResult.AuthFailed with
// the cursor unchanged rather than as an error, so the poll loop can back off
// and retry; transport failures are returned as errors.
func (c *Client) FetchCalls(ctx context.Context, channels []string, cursor Cursor) (*FetchResult, error) {
	refs := normalizeChannels(channels)
	if len(refs) == 0 {
		return &FetchResult{Cursor: cursor}, nil
	}

	session, err := c.ensureSession(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeAuthentication) {
			c.log.Warn("authentication failed, holding cursor", logger.ErrorFields("fetch", err))
			return &FetchResult{Cursor: cursor, AuthFailed: true}, nil
		}
		return nil, err
	}
	creds, _ := c.snapshot()

	result := &FetchResult{Cursor: cursor}
	for start := 0; start < len(refs); start += maxGroupsPerRequest {
		end := min(start+maxGroupsPerRequest, len(refs))

		page, err := c.fetchPage(ctx, creds, session, refs[start:end], cursor)
		if err != nil {
			if httpclient.IsAuth(err) {
				// Session expired mid-poll: drop it so the next poll
				// re-authenticates, and report no advance.
				c.clearSession()
				c.log.Warn("session rejected, holding cursor", logger.ErrorFields("fetch", err))
				return &FetchResult{Cursor: cursor, AuthFailed: true}, nil
			}
			return nil, err
		}

		result.Calls = append(result.Calls, page.calls...)
		if page.cursor != NoCursor {
			result.Cursor = page.cursor
		}
	}

	return result, nil
}

// fetchPage issues one feed request for a chunk of channel refs.
func (c *Client) fetchPage(ctx context.Context, creds Credentials, session *SessionIdentity, refs []string, cursor Cursor) (*feedPage, error) {
	token, err := BuildToken(creds, session, true)
	if err != nil {
		return nil, err
	}

	query := map[string]string{"groups": strings.Join(refs, ",")}
	if cursor == NoCursor {
		query["init"] = "1"
	} else {
		query["pos"] = string(cursor)
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   feedPath,
		Query:  query,
		Auth:   httpclient.BearerAuth(token),
	})
	if err != nil {
		if httpclient.IsAuth(err) {
			return nil, err
		}
		return nil, errors.TransientNetwork("fetch calls", err)
	}

	return decodeFeedPage(resp.Body)
}

type feedPage struct {
	calls  []CallRecord
	cursor Cursor
}

// feedEnvelope matches the upstream feed response. Per-call entities are kept
// raw because field names shift between API versions.
type feedEnvelope struct {
	Calls   []json.RawMessage `json:"calls"`
	LastPos json.RawMessage   `json:"lastPos"`
}

// decodeFeedPage parses a feed response, tolerating missing optional fields.
func decodeFeedPage(body []byte) (*feedPage, error) {
	var envelope feedEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.DataShape("feed response").WithCause(err)
	}

	page := &feedPage{cursor: cursorFromJSON(envelope.LastPos)}
	for _, raw := range envelope.Calls {
		page.calls = append(page.calls, decodeCall(raw))
	}
	return page, nil
}

// decodeCall extracts a CallRecord from one upstream call entity. Field names
// vary across API versions, so each field is resolved from a candidate list;
// anything missing degrades to its zero value. The raw entity is preserved.
func decodeCall(raw json.RawMessage) CallRecord {
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)

	record := CallRecord{Raw: raw}
	record.Group = stringField(fields, "groupId", "grp", "group", "tg")
	record.AudioURL = stringField(fields, "audioUrl", "audio_url", "url", "enc_url")
	record.Duration = floatField(fields, "duration", "call_duration", "len")
	if ts := floatField(fields, "ts", "start_ts", "startTime"); ts > 0 {
		record.ReceivedAt = time.Unix(int64(ts), 0).UTC()
	}
	return record
}

// cursorFromJSON accepts a numeric or string position marker.
func cursorFromJSON(raw json.RawMessage) Cursor {
	if len(raw) == 0 {
		return NoCursor
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return NoCursor
	}
	switch v := value.(type) {
	case string:
		return Cursor(v)
	case float64:
		return Cursor(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return NoCursor
	}
}

// stringField returns the first candidate key present as a string or number.
func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// floatField returns the first candidate key present as a number.
func floatField(fields map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// normalizeChannels collapses duplicates and sorts for a deterministic join.
func normalizeChannels(channels []string) []string {
	seen := make(map[string]bool, len(channels))
	refs := make([]string, 0, len(channels))
	for _, ch := range channels {
		ch = strings.TrimSpace(ch)
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		refs = append(refs, ch)
	}
	sort.Strings(refs)
	return refs
}
