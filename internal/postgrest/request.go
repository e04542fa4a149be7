package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// APIError represents an error response from the table API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("table api error %d: %s", e.StatusCode, e.Message)
}

// doRequest performs a single HTTP request against /rest/v1/<table>.
// rangeHdr, when non-empty, selects a window of rows ("start-end").
func (c *Client) doRequest(ctx context.Context, method, table string, query url.Values, rangeHdr string, body []byte) ([]byte, error) {
	fullURL := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}
	if rangeHdr != "" {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", rangeHdr)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respBody,
		}
	}

	return respBody, nil
}

// Select fetches all rows matching q into dest (a pointer to a slice),
// paginating with Range windows until a short page signals the end.
func (c *Client) Select(ctx context.Context, q Query, dest any) error {
	rows := []json.RawMessage{}
	offset := 0

	for {
		rangeHdr := strconv.Itoa(offset) + "-" + strconv.Itoa(offset+c.pageSize-1)
		body, err := c.doRequest(ctx, http.MethodGet, q.Table, q.Values(), rangeHdr, nil)
		if err != nil {
			return err
		}

		var page []json.RawMessage
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("unmarshal page: %w", err)
		}

		rows = append(rows, page...)

		c.logger.Debug("fetched page",
			"table", q.Table,
			"offset", offset,
			"rows", len(page),
		)

		if len(page) < c.pageSize {
			break
		}
		offset += c.pageSize
	}

	// Reassemble the pages into one array so dest unmarshals in a single pass.
	combined, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	if err := json.Unmarshal(combined, dest); err != nil {
		return fmt.Errorf("unmarshal rows: %w", err)
	}
	return nil
}

// Insert posts a single record to the table.
func (c *Client) Insert(ctx context.Context, table string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if _, err := c.doRequest(ctx, http.MethodPost, table, nil, "", body); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}
