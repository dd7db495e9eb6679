package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ImgBBStore forwards images to the ImgBB hosting API as a base64-encoded
// urlencoded form and returns the hosted URL.
type ImgBBStore struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewImgBBStore(endpoint, apiKey string) *ImgBBStore {
	return &ImgBBStore{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type imgBBResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *ImgBBStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	endpoint := fmt.Sprintf("%s?key=%s", s.endpoint, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build ImgBB request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ImgBB request failed: %w", err)
	}
	defer resp.Body.Close()

	var body imgBBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ImgBB response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		msg := body.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("ImgBB upload failed: %s", msg)
	}

	return body.Data.URL, nil
}
