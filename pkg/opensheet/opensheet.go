package opensheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// BaseURL points at an opensheet-compatible endpoint. Tests override it.
var BaseURL = "https://opensheet.elk.sh"

// Row is one spreadsheet data row as returned by the API: a JSON object
// whose keys come from the sheet's header row.
type Row = json.RawMessage

// shared rate-limited client instance
var sharedClient = NewRateLimitedClient(&http.Client{
	Timeout: 10 * time.Second,
})

// GetRows fetches all data rows of one sheet tab. A single request is
// made per call; the caller decides what to do on failure.
func GetRows(sheetID, tabName string) ([]Row, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", BaseURL, url.PathEscape(sheetID), url.PathEscape(tabName))
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := sharedClient.SendWithRetry(req, 0)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response: %d\n%s", resp.StatusCode, string(body))
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet tab has no data rows")
	}
	return rows, nil
}

// FirstField returns the value of the row's first column in document
// order. Column names are taken from the sheet header and never assumed.
func FirstField(r Row) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(r))

	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", errors.New("row is not an object")
	}
	if !dec.More() {
		return "", errors.New("row has no columns")
	}
	if _, err := dec.Token(); err != nil { // column name
		return "", err
	}

	var value string
	if err := dec.Decode(&value); err != nil {
		return "", fmt.Errorf("first column is not text: %w", err)
	}
	return value, nil
}
