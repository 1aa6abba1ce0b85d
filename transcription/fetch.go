package transcription

import (
	"context"
	"net/http"
	"os"

	"github.com/skillsenselab/radiowatch/errors"
	"github.com/skillsenselab/radiowatch/httpclient"
)

// FetchAudio downloads the referenced audio to a temporary file and returns
// its path with a cleanup function that removes it. Callers must invoke
// cleanup on every exit path. Used by backends that require a local file
// upload rather than a URL submission.
func FetchAudio(ctx context.Context, client *httpclient.Client, audioURL string) (string, func(), error) {
	if audioURL == "" {
		return "", nil, errors.InvalidInput("audioURL", "is required")
	}

	resp, err := client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   audioURL,
	})
	if err != nil {
		return "", nil, errors.TransientNetwork("fetch audio", err)
	}

	f, err := os.CreateTemp("", "radiowatch-call-*.mp3")
	if err != nil {
		return "", nil, errors.Internal(err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(resp.Body); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, errors.Internal(err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, errors.Internal(err)
	}

	return path, cleanup, nil
}
