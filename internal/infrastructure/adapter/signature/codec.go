package signature

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
)

// ErrMalformedBody is returned when a body cannot be canonicalized
var ErrMalformedBody = errors.New("body is not valid JSON")

// Codec signs outbound provider calls with the merchant private key and
// verifies inbound callbacks with the provider public key. Either key may be
// absent; the matching operation then fails closed.
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewCodec parses both keys. Empty PEM text leaves that key unset.
func NewCodec(privatePEM, publicPEM string) (*Codec, error) {
	c := &Codec{}

	if strings.TrimSpace(privatePEM) != "" {
		key, err := ParsePrivateKey(privatePEM)
		if err != nil {
			return nil, err
		}
		c.privateKey = key
	}

	if strings.TrimSpace(publicPEM) != "" {
		key, err := ParsePublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		c.publicKey = key
	}

	return c, nil
}

// HasPrivateKey reports whether outbound signing is possible
func (c *Codec) HasPrivateKey() bool { return c.privateKey != nil }

// HasPublicKey reports whether inbound verification is possible
func (c *Codec) HasPublicKey() bool { return c.publicKey != nil }

// StringToSign builds METHOD:PATH:lowerhex(sha256(body)):TIMESTAMP over an already canonical body
func StringToSign(method, path string, canonicalBody []byte, timestamp string) string {
	sum := sha256.Sum256(canonicalBody)
	return strings.Join([]string{
		strings.ToUpper(method),
		path,
		hex.EncodeToString(sum[:]),
		timestamp,
	}, ":")
}

// Sign returns the base64 RSA-SHA256 PKCS#1 v1.5 signature of stringToSign
func (c *Codec) Sign(stringToSign string) (string, error) {
	if c.privateKey == nil {
		return "", fmt.Errorf("%w: merchant private key is not configured", errs.ErrConfiguration)
	}

	digest := sha256.Sum256([]byte(stringToSign))
	sig, err := rsa.SignPKCS1v15(rand.Reader, c.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify reports whether signature is a valid base64 signature of stringToSign.
// It never errors: a missing key, bad encoding or mismatch all yield false.
func (c *Codec) Verify(stringToSign, signature string) bool {
	if c.publicKey == nil || signature == "" {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(stringToSign))
	return rsa.VerifyPKCS1v15(c.publicKey, crypto.SHA256, digest[:], raw) == nil
}

// SignPayload canonicalizes payload and signs it for method and path. The
// returned body must be sent as-is so the provider hashes the same bytes.
func (c *Codec) SignPayload(method, path string, payload any, timestamp string) ([]byte, string, error) {
	body, err := CanonicalizeValue(payload)
	if err != nil {
		return nil, "", err
	}

	sig, err := c.Sign(StringToSign(method, path, body, timestamp))
	if err != nil {
		return nil, "", err
	}
	return body, sig, nil
}

// CanonicalJSON re-encodes a JSON document with sorted object keys, no
// insignificant whitespace, no HTML escaping and numbers kept verbatim.
// An empty body canonicalizes to {}.
func CanonicalJSON(body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []byte("{}"), nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedBody)
	}

	return encode(v)
}

// CanonicalizeValue encodes a Go value in canonical form
func CanonicalizeValue(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}

	// Round-trip through a generic value so struct field order does not leak into the output.
	raw, err := encode(v)
	if err != nil {
		return nil, err
	}
	return CanonicalJSON(raw)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NormalizePEM turns PEM text stored in a single-line environment variable,
// with literal \n sequences and optional surrounding quotes, into real PEM.
func NormalizePEM(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"'`)
	text = strings.ReplaceAll(text, `\r\n`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	return strings.TrimSpace(text) + "\n"
}

// ParsePrivateKey accepts PKCS#1 and PKCS#8 RSA private keys
func ParsePrivateKey(text string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(NormalizePEM(text)))
	if block == nil {
		return nil, fmt.Errorf("%w: private key is not PEM encoded", errs.ErrConfiguration)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %v", errs.ErrConfiguration, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not RSA", errs.ErrConfiguration)
	}
	return key, nil
}

// ParsePublicKey accepts PKIX and PKCS#1 RSA public keys
func ParsePublicKey(text string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(NormalizePEM(text)))
	if block == nil {
		return nil, fmt.Errorf("%w: public key is not PEM encoded", errs.ErrConfiguration)
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is not RSA", errs.ErrConfiguration)
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %v", errs.ErrConfiguration, err)
	}
	return key, nil
}

// GenerateKeyPair creates an RSA key pair as PKCS#8 private and PKIX public PEM text
func GenerateKeyPair(bits int) (privatePEM string, publicPEM string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", fmt.Errorf("generate key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", fmt.Errorf("marshal private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("marshal public key: %w", err)
	}

	privatePEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	return privatePEM, publicPEM, nil
}

// EscapePEM renders PEM text on a single line with literal \n, the form used in .env files
func EscapePEM(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", `\n`)
}
