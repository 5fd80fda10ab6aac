package signature

import (
	"encoding/json"
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) (*Codec, string, string) {
	t.Helper()
	privatePEM, publicPEM, err := GenerateKeyPair(2048)
	require.NoError(t, err)

	codec, err := NewCodec(privatePEM, publicPEM)
	require.NoError(t, err)
	return codec, privatePEM, publicPEM
}

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty body", "", "{}"},
		{"Whitespace body", "  \n", "{}"},
		{"Sorted keys and compact", `{ "b": 1, "a": {"d": true, "c": null} }`, `{"a":{"c":null,"d":true},"b":1}`},
		{"Numbers kept verbatim", `{"amount": 15000.00, "big": 12345678901234567890}`, `{"amount":15000.00,"big":12345678901234567890}`},
		{"No HTML escaping", `{"url":"https://x.id/?a=1&b=<2>"}`, `{"url":"https://x.id/?a=1&b=<2>"}`},
		{"Arrays keep order", `[3,1,2]`, `[3,1,2]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := CanonicalJSON([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(out))
		})
	}

	_, err := CanonicalJSON([]byte(`{"a":`))
	assert.ErrorIs(t, err, ErrMalformedBody)

	_, err = CanonicalJSON([]byte(`{} {}`))
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestCanonicalizeValue(t *testing.T) {
	type payload struct {
		Zeta  string `json:"zeta"`
		Alpha string `json:"alpha"`
	}

	out, err := CanonicalizeValue(payload{Zeta: "z", Alpha: "a&b"})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"a&b","zeta":"z"}`, string(out))

	out, err = CanonicalizeValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestStringToSign(t *testing.T) {
	s := StringToSign("post", "/api/create/qris", []byte("{}"), "1735689600")

	// sha256("{}")
	assert.Equal(t, "POST:/api/create/qris:44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a:1735689600", s)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	body, sig, err := codec.SignPayload("POST", "/api/create/qris", map[string]any{
		"merchant_transaction_id": "TRX-1",
		"amount":                  "15000",
	}, "1735689600")
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"15000","merchant_transaction_id":"TRX-1"}`, string(body))

	sts := StringToSign("POST", "/api/create/qris", body, "1735689600")
	assert.True(t, codec.Verify(sts, sig))

	t.Run("Tampering with any component fails", func(t *testing.T) {
		tampered := []string{
			StringToSign("PUT", "/api/create/qris", body, "1735689600"),
			StringToSign("POST", "/api/create/qrisx", body, "1735689600"),
			StringToSign("POST", "/api/create/qris", []byte(`{"amount":"15001","merchant_transaction_id":"TRX-1"}`), "1735689600"),
			StringToSign("POST", "/api/create/qris", body, "1735689601"),
		}
		for _, s := range tampered {
			assert.False(t, codec.Verify(s, sig), s)
		}
	})

	t.Run("Malformed signatures are rejected without error", func(t *testing.T) {
		assert.False(t, codec.Verify(sts, ""))
		assert.False(t, codec.Verify(sts, "%%%not-base64"))
		assert.False(t, codec.Verify(sts, sig[:len(sig)-8]+"AAAAAAA="))
	})

	t.Run("Signature from another key is rejected", func(t *testing.T) {
		other, _, _ := newTestCodec(t)
		otherSig, err := other.Sign(sts)
		require.NoError(t, err)
		assert.False(t, codec.Verify(sts, otherSig))
	})
}

func TestMissingKeys(t *testing.T) {
	codec, err := NewCodec("", "")
	require.NoError(t, err)
	assert.False(t, codec.HasPrivateKey())
	assert.False(t, codec.HasPublicKey())

	_, err = codec.Sign("x")
	assert.ErrorIs(t, err, errs.ErrConfiguration)
	assert.False(t, codec.Verify("x", "c2ln"))
}

func TestParseKeys(t *testing.T) {
	_, privatePEM, publicPEM := newTestCodec(t)

	t.Run("Escaped single-line PEM", func(t *testing.T) {
		escapedPriv := `"` + EscapePEM(privatePEM) + `"`
		escapedPub := EscapePEM(publicPEM)
		assert.NotContains(t, escapedPub, "\n")

		codec, err := NewCodec(escapedPriv, escapedPub)
		require.NoError(t, err)
		assert.True(t, codec.HasPrivateKey())
		assert.True(t, codec.HasPublicKey())
	})

	t.Run("Garbage is a configuration error", func(t *testing.T) {
		_, err := ParsePrivateKey("not a key")
		assert.ErrorIs(t, err, errs.ErrConfiguration)

		_, err = ParsePublicKey("-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----")
		assert.ErrorIs(t, err, errs.ErrConfiguration)

		_, err = NewCodec(strings.Replace(privatePEM, "PRIVATE KEY", "NOTHING", 1)+"x", "")
		assert.Error(t, err)
	})
}

func TestWebhookVerifier(t *testing.T) {
	codec, _, _ := newTestCodec(t)
	const path = "/api/transactions/webhook/zenospay"
	verifier := NewWebhookVerifier(codec, path, true)

	raw := []byte(`{"status":"paid", "merchant_transaction_id":"TRX-1"}`)
	canonical, err := CanonicalJSON(raw)
	require.NoError(t, err)
	sig, err := codec.Sign(StringToSign("POST", path, canonical, "1735689600"))
	require.NoError(t, err)

	assert.True(t, verifier.Enabled())
	assert.NoError(t, verifier.Authenticate(raw, "1735689600", sig))

	// Key order and whitespace do not matter, content does
	reordered, _ := json.Marshal(map[string]string{"merchant_transaction_id": "TRX-1", "status": "paid"})
	assert.NoError(t, verifier.Authenticate(reordered, "1735689600", sig))

	assert.ErrorIs(t, verifier.Authenticate([]byte(`{"status":"failed","merchant_transaction_id":"TRX-1"}`), "1735689600", sig), errs.ErrAuthentication)
	assert.ErrorIs(t, verifier.Authenticate(raw, "", sig), errs.ErrAuthentication)
	assert.ErrorIs(t, verifier.Authenticate(raw, "1735689600", ""), errs.ErrAuthentication)
	assert.ErrorIs(t, verifier.Authenticate([]byte("not json"), "1735689600", sig), errs.ErrAuthentication)

	disabled := NewWebhookVerifier(codec, path, false)
	assert.False(t, disabled.Enabled())
	assert.NoError(t, disabled.Authenticate([]byte("anything"), "", ""))
}
