// Package envelope wraps and unwraps the encrypted transport envelope every
// request and response body travels in: {"data": "<ciphertext>"}.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEnvelope marks a response that arrived with a 2xx status but
// whose body could not be decrypted or parsed. Callers discard the whole
// response; there is no partial recovery.
var ErrMalformedEnvelope = errors.New("envelope: malformed envelope")

// Envelope is the only shape that ever crosses the wire for bodies.
type Envelope struct {
	Data string `json:"data"`
}

type Codec struct {
	cipher Cipher
}

func NewCodec(cipher Cipher) *Codec {
	return &Codec{cipher: cipher}
}

// Wrap serializes payload and encrypts it into an Envelope.
func (c *Codec) Wrap(payload any) (Envelope, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("envelope: marshal payload: %w", err)
	}
	data, err := c.cipher.Encrypt(string(plaintext))
	if err != nil {
		return Envelope{}, fmt.Errorf("envelope: encrypt payload: %w", err)
	}
	return Envelope{Data: data}, nil
}

// Unwrap decrypts a raw envelope body back into plaintext JSON. Any failure
// along the way surfaces as ErrMalformedEnvelope.
func (c *Codec) Unwrap(raw []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.Data == "" {
		return nil, fmt.Errorf("%w: empty data field", ErrMalformedEnvelope)
	}

	plaintext, err := c.cipher.Decrypt(env.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if !json.Valid([]byte(plaintext)) {
		return nil, fmt.Errorf("%w: decrypted body is not JSON", ErrMalformedEnvelope)
	}
	return json.RawMessage(plaintext), nil
}

// Open unwraps raw and decodes the plaintext into out.
func (c *Codec) Open(raw []byte, out any) error {
	plaintext, err := c.Unwrap(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return nil
}
