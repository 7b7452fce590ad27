// Package docstore is a thin client for the couch-style document store that
// serves firmware module type and module instance definitions.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resty.dev/v3"
)

// Database names used by the firmware tooling.
const (
	ModuleTypeDB = "firmware_module_type"
	ModuleDB     = "firmware_module"
)

// reservedPrefix marks store-internal documents that must never be treated
// as module definitions.
const reservedPrefix = "_"

// Client talks to one document store server.
type Client struct {
	http *resty.Client
}

// New returns a client for the store at the given base URL.
func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

type allDocsResponse struct {
	Rows []struct {
		ID string `json:"id"`
	} `json:"rows"`
}

// AllDocIDs lists the document ids of a database in server order, skipping
// ids with the reserved internal prefix. The body is decoded explicitly
// rather than through content-type negotiation so a store serving without a
// JSON content type still fails loudly instead of listing nothing.
func (c *Client) AllDocIDs(ctx context.Context, db string) ([]string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/_all_docs", db))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", db, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("listing %s: server returned %s", db, res.Status())
	}

	var out allDocsResponse
	if err := json.Unmarshal(res.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("listing %s: %w", db, err)
	}

	var ids []string
	for _, row := range out.Rows {
		if strings.HasPrefix(row.ID, reservedPrefix) {
			continue
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// GetDoc fetches one document as raw JSON. The store's own metadata fields
// (reserved-prefix keys like _id and _rev) are stripped so callers see only
// the definition itself.
func (c *Client) GetDoc(ctx context.Context, db string, id string) (json.RawMessage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/%s", db, id))
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", db, id, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetching %s/%s: server returned %s", db, id, res.Status())
	}

	doc, err := stripReservedFields(res.Bytes())
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", db, id, err)
	}
	return doc, nil
}

func stripReservedFields(data []byte) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	for key := range doc {
		if strings.HasPrefix(key, reservedPrefix) {
			delete(doc, key)
		}
	}
	return json.Marshal(doc)
}
