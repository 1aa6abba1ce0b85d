package broadcastify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
)

// DiscoverGroups lists the channels (talkgroups) active in a county. The
// response shape has shifted between API versions (sometimes an object with
// a groups array, sometimes a bare array, with varying field names), so
// parsing is deliberately tolerant.
func (c *Client) DiscoverGroups(ctx context.Context, countyID string) ([]Group, error) {
	creds, _ := c.snapshot()

	token, err := BuildToken(creds, nil, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/calls/v1/groups_county/%s", countyID),
		Auth:   httpclient.BearerAuth(token),
	})
	if err != nil {
		if status := httpclient.StatusOf(err); status == 401 || status == 403 {
			return nil, errors.Authentication(status).WithCause(err)
		}
		return nil, errors.TransientNetwork("discover groups", err)
	}

	return decodeGroups(resp.Body)
}

func decodeGroups(body []byte) ([]Group, error) {
	var entries []map[string]any

	var object struct {
		Groups []map[string]any `json:"groups"`
	}
	if err := json.Unmarshal(body, &object); err == nil && object.Groups != nil {
		entries = object.Groups
	} else if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.DataShape("groups response").WithCause(err)
	}

	groups := make([]Group, 0, len(entries))
	for _, entry := range entries {
		id := stringField(entry, "groupId", "id")
		if id == "" {
			continue
		}
		description := stringField(entry, "description", "descr", "name")
		if description == "" {
			description = "Unknown"
		}
		groups = append(groups, Group{ID: id, Description: description})
	}
	return groups, nil
}
