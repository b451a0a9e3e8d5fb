// Package transport is the authenticated fetch adapter: it attaches bearer
// tokens, runs every body through the encrypted envelope codec, and turns
// non-2xx responses into typed errors. No retries, no extra timeouts; the
// caller decides whether to try again.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/envelope"
)

type Client struct {
	baseURL string
	http    *http.Client
	codec   *envelope.Codec
	tokens  TokenProvider
	log     *logrus.Logger
}

func NewClient(baseURL string, httpClient *http.Client, codec *envelope.Codec, tokens TokenProvider, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		codec:   codec,
		tokens:  tokens,
		log:     log,
	}
}

// Call issues one authenticated request. A non-nil body is wrapped in the
// encrypted envelope; a 2xx response body is unwrapped before it is returned.
func (c *Client) Call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	token := c.tokens.AccessToken()
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var reqBody io.Reader
	if body != nil {
		env, err := c.codec.Wrap(body)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("transport: encode envelope: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	entry := c.log.WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    method,
		"path":      path,
	})

	res, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Error("request transport failure")
		return nil, fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		entry.WithError(err).Error("read response body failed")
		return nil, fmt.Errorf("transport: read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := errorMessage(raw, res.StatusCode)
		entry.WithField("status", res.StatusCode).Warn("request rejected: ", message)
		return nil, &RequestError{Status: res.StatusCode, Message: message}
	}

	plaintext, err := c.codec.Unwrap(raw)
	if err != nil {
		entry.WithError(err).Error("response envelope unreadable")
		return nil, err
	}

	entry.WithField("status", res.StatusCode).Debug("request completed")
	return plaintext, nil
}

// CallInto runs Call and decodes the plaintext response into out.
func (c *Client) CallInto(ctx context.Context, method, path string, body, out any) error {
	plaintext, err := c.Call(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, out); err != nil {
		return fmt.Errorf("%w: %v", envelope.ErrMalformedEnvelope, err)
	}
	return nil
}

// errorMessage pulls the server's plaintext {"message": ...} out of an error
// body, falling back to a generic status line.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}
