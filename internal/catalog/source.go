package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// Source loads the raw {products, categories} document.
type Source interface {
	Fetch(ctx context.Context) (Data, error)
}

// FileSource reads a static JSON document from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(_ context.Context) (Data, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Data{}, fmt.Errorf("read catalog file: %w", err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode catalog file %s: %w", s.path, err)
	}
	return d, nil
}

// HTTPSource fetches the same document from a content API.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context) (Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Data{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Data{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Data{}, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var d Data
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return Data{}, fmt.Errorf("decode catalog response: %w", err)
	}
	return d, nil
}
