// Package webhook decodes and verifies signed Farcaster mini-app events.
package webhook

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Event types sent by Farcaster clients.
const (
	EventFrameAdded            = "frame_added"
	EventFrameRemoved          = "frame_removed"
	EventNotificationsEnabled  = "notifications_enabled"
	EventNotificationsDisabled = "notifications_disabled"
)

var (
	// ErrMalformedEnvelope is returned when the event can not be decoded.
	ErrMalformedEnvelope = errors.New("malformed event envelope")
	// ErrInvalidSignature is returned when the signature check fails.
	ErrInvalidSignature = errors.New("invalid event signature")
)

// Envelope is the wire form of a signed event. All three fields are
// base64url-encoded, the signature covers "<header>.<payload>".
type Envelope struct {
	Header    string `json:"header"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
}

// Header identifies the signer. Key is an 0x-prefixed ed25519 public key the
// client registered for the fid.
type Header struct {
	FID  uint64 `json:"fid"`
	Type string `json:"type"`
	Key  string `json:"key"`
}

// NotificationDetails carries the push grant a client issued for the fid.
type NotificationDetails struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// Event is a decoded mini-app lifecycle event.
type Event struct {
	FID                 uint64
	Type                string
	NotificationDetails *NotificationDetails
}

type payload struct {
	Event               string               `json:"event"`
	NotificationDetails *NotificationDetails `json:"notificationDetails"`
}

// Decode parses the envelope from b, checks the ed25519 signature against the
// app key from the header and returns the decoded event.
func Decode(b []byte) (*Event, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, ErrMalformedEnvelope
	}

	hb, err := base64.RawURLEncoding.DecodeString(env.Header)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}

	var h Header
	if err := json.Unmarshal(hb, &h); err != nil {
		return nil, ErrMalformedEnvelope
	}

	if h.Type != "app_key" {
		return nil, fmt.Errorf("%w: unsupported signer type %q", ErrMalformedEnvelope, h.Type)
	}

	key, err := hex.DecodeString(strings.TrimPrefix(h.Key, "0x"))
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: bad app key", ErrMalformedEnvelope)
	}

	sig, err := base64.RawURLEncoding.DecodeString(env.Signature)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}

	if !ed25519.Verify(ed25519.PublicKey(key), []byte(env.Header+"."+env.Payload), sig) {
		return nil, ErrInvalidSignature
	}

	pb, err := base64.RawURLEncoding.DecodeString(env.Payload)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}

	var p payload
	if err := json.Unmarshal(pb, &p); err != nil {
		return nil, ErrMalformedEnvelope
	}

	switch p.Event {
	case EventFrameAdded, EventFrameRemoved, EventNotificationsEnabled, EventNotificationsDisabled:
	default:
		return nil, fmt.Errorf("%w: unknown event %q", ErrMalformedEnvelope, p.Event)
	}

	return &Event{
		FID:                 h.FID,
		Type:                p.Event,
		NotificationDetails: p.NotificationDetails,
	}, nil
}
