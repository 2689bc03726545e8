package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/crucial707/todo-api/cmd/cli/config"
)

// Envelope mirrors the API's {success, data|error} response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	TodoID  int             `json:"todoId"`
}

// Call sends payload as JSON to path and decodes the envelope. The stored
// token, if any, is sent as a bearer token. A failure envelope is an error.
func Call(method, path string, payload interface{}) (*Envelope, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, config.APIURL()+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := config.LoadToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}
	if !env.Success {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, env.Error)
	}
	return &env, nil
}

// DecodeData unmarshals the envelope's data into out.
func (e *Envelope) DecodeData(out interface{}) error {
	return json.Unmarshal(e.Data, out)
}
