package webhook

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelopeOpts struct {
	signerType string
	key        string
	payload    interface{}
	tamper     bool
}

func newEnvelope(t *testing.T, priv ed25519.PrivateKey, fid uint64, opts envelopeOpts) []byte {
	t.Helper()

	if opts.signerType == "" {
		opts.signerType = "app_key"
	}
	if opts.key == "" {
		opts.key = "0x" + hex.EncodeToString(priv.Public().(ed25519.PublicKey))
	}

	hb, err := json.Marshal(Header{FID: fid, Type: opts.signerType, Key: opts.key})
	require.NoError(t, err)

	pb, err := json.Marshal(opts.payload)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString(hb)
	payload := base64.RawURLEncoding.EncodeToString(pb)

	sig := ed25519.Sign(priv, []byte(header+"."+payload))

	if opts.tamper {
		pb, err = json.Marshal(map[string]string{"event": EventFrameRemoved})
		require.NoError(t, err)
		payload = base64.RawURLEncoding.EncodeToString(pb)
	}

	out, err := json.Marshal(Envelope{
		Header:    header,
		Payload:   payload,
		Signature: base64.RawURLEncoding.EncodeToString(sig),
	})
	require.NoError(t, err)

	return out
}

func newSigner(t *testing.T) ed25519.PrivateKey {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

func TestDecode_FrameAdded(t *testing.T) {
	priv := newSigner(t)

	b := newEnvelope(t, priv, 239396, envelopeOpts{
		payload: map[string]interface{}{
			"event": EventFrameAdded,
			"notificationDetails": map[string]string{
				"url":   "https://api.farcaster.xyz/v1/frame-notifications",
				"token": "token",
			},
		},
	})

	ev, err := Decode(b)
	require.NoError(t, err)
	assert.EqualValues(t, 239396, ev.FID)
	assert.Equal(t, EventFrameAdded, ev.Type)
	require.NotNil(t, ev.NotificationDetails)
	assert.Equal(t, "https://api.farcaster.xyz/v1/frame-notifications", ev.NotificationDetails.URL)
	assert.Equal(t, "token", ev.NotificationDetails.Token)
}

func TestDecode_FrameRemoved(t *testing.T) {
	priv := newSigner(t)

	b := newEnvelope(t, priv, 239396, envelopeOpts{
		payload: map[string]string{"event": EventFrameRemoved},
	})

	ev, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, EventFrameRemoved, ev.Type)
	assert.Nil(t, ev.NotificationDetails)
}

func TestDecode_NotificationsToggle(t *testing.T) {
	priv := newSigner(t)

	b := newEnvelope(t, priv, 1, envelopeOpts{
		payload: map[string]interface{}{
			"event": EventNotificationsEnabled,
			"notificationDetails": map[string]string{
				"url":   "https://api.farcaster.xyz/v1/frame-notifications",
				"token": "token",
			},
		},
	})

	ev, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, EventNotificationsEnabled, ev.Type)

	b = newEnvelope(t, priv, 1, envelopeOpts{
		payload: map[string]string{"event": EventNotificationsDisabled},
	})

	ev, err = Decode(b)
	require.NoError(t, err)
	assert.Equal(t, EventNotificationsDisabled, ev.Type)
}

func TestDecode_TamperedPayload(t *testing.T) {
	priv := newSigner(t)

	b := newEnvelope(t, priv, 239396, envelopeOpts{
		payload: map[string]string{"event": EventFrameAdded},
		tamper:  true,
	})

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecode_ForeignKey(t *testing.T) {
	priv := newSigner(t)
	foreign := newSigner(t)

	b := newEnvelope(t, priv, 239396, envelopeOpts{
		key:     "0x" + hex.EncodeToString(foreign.Public().(ed25519.PublicKey)),
		payload: map[string]string{"event": EventFrameAdded},
	})

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecode_Malformed(t *testing.T) {
	priv := newSigner(t)

	tt := []struct {
		name string
		b    []byte
	}{
		{
			name: "not json",
			b:    []byte("not json"),
		},
		{
			name: "bad base64",
			b:    []byte(`{"header":"!!!","payload":"e30","signature":"e30"}`),
		},
		{
			name: "unknown event",
			b: newEnvelope(t, priv, 1, envelopeOpts{
				payload: map[string]string{"event": "frame_exploded"},
			}),
		},
		{
			name: "unsupported signer type",
			b: newEnvelope(t, priv, 1, envelopeOpts{
				signerType: "custody",
				payload:    map[string]string{"event": EventFrameAdded},
			}),
		},
		{
			name: "short app key",
			b: newEnvelope(t, priv, 1, envelopeOpts{
				key:     "0xdeadbeef",
				payload: map[string]string{"event": EventFrameAdded},
			}),
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.b)
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}
