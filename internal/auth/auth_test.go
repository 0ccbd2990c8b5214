package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func newJWKSServer(t *testing.T, keys map[string]*ecdsa.PublicKey) *httptest.Server {
	t.Helper()

	type jwk struct {
		Kty string `json:"kty"`
		Crv string `json:"crv"`
		Kid string `json:"kid"`
		X   string `json:"x"`
		Y   string `json:"y"`
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/.well-known/jwks.json", r.URL.Path)

		var out struct {
			Keys []jwk `json:"keys"`
		}

		for kid, k := range keys {
			out.Keys = append(out.Keys, jwk{
				Kty: "EC",
				Crv: "P-256",
				Kid: kid,
				X:   base64.RawURLEncoding.EncodeToString(k.X.FillBytes(make([]byte, 32))),
				Y:   base64.RawURLEncoding.EncodeToString(k.Y.FillBytes(make([]byte, 32))),
			})
		}

		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
}

func signToken(t *testing.T, key *ecdsa.PrivateKey, kid string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = kid

	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func claimsFor(issuer string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "239396",
		Audience:  jwt.ClaimStrings{"clinkers.xyz"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func TestVerifier_Verify(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	fid, err := v.Verify(ctx, signToken(t, key, "key-1", claimsFor(ts.URL)))
	require.NoError(t, err)
	assert.EqualValues(t, 239396, fid)
}

func TestVerifier_Verify_KeysCached(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	_, err := v.Verify(ctx, signToken(t, key, "key-1", claimsFor(ts.URL)))
	require.NoError(t, err)

	// the key is cached, no more round trips to the issuer
	ts.Close()

	fid, err := v.Verify(ctx, signToken(t, key, "key-1", claimsFor(ts.URL)))
	require.NoError(t, err)
	assert.EqualValues(t, 239396, fid)
}

func TestVerifier_Verify_WrongAudience(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	claims := claimsFor(ts.URL)
	claims.Audience = jwt.ClaimStrings{"evil.xyz"}

	_, err := v.Verify(ctx, signToken(t, key, "key-1", claims))
	assert.ErrorIs(t, err, ErrWrongAudience)
}

func TestVerifier_Verify_Expired(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	claims := claimsFor(ts.URL)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err := v.Verify(ctx, signToken(t, key, "key-1", claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_UnknownKey(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	_, err := v.Verify(ctx, signToken(t, key, "key-2", claimsFor(ts.URL)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_ForgedSignature(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	_, err := v.Verify(ctx, signToken(t, newKey(t), "key-1", claimsFor(ts.URL)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_SubjectIsNotFID(t *testing.T) {
	key := newKey(t)
	ts := newJWKSServer(t, map[string]*ecdsa.PublicKey{"key-1": &key.PublicKey})
	defer ts.Close()

	v := NewVerifier(ts.URL, "clinkers.xyz", time.Minute)

	claims := claimsFor(ts.URL)
	claims.Subject = "gavin"

	_, err := v.Verify(ctx, signToken(t, key, "key-1", claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromRequest(t *testing.T) {
	tt := []struct {
		name   string
		header string
		token  string
		err    error
	}{
		{
			name:   "valid",
			header: "Bearer token",
			token:  "token",
		},
		{
			name:   "lowercase scheme",
			header: "bearer token",
			token:  "token",
		},
		{
			name: "no header",
			err:  ErrNoToken,
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
			err:    ErrNoToken,
		},
		{
			name:   "empty token",
			header: "Bearer ",
			err:    ErrNoToken,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			token, err := TokenFromRequest(r)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestFIDFromContext(t *testing.T) {
	_, ok := FIDFromContext(ctx)
	assert.False(t, ok)

	fid, ok := FIDFromContext(WithFID(ctx, 239396))
	assert.True(t, ok)
	assert.EqualValues(t, 239396, fid)
}
