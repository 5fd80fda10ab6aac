package zenospay

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
)

// Field aliases seen in provider responses, in order of preference
var (
	qrStringKeys      = []string{"qr_content", "qr_string", "qrString", "qr", "qrCode"}
	qrURLKeys         = []string{"qr_url", "qrUrl", "qr_code_url", "codeUrl"}
	redirectURLKeys   = []string{"redirect_url", "redirectUrl"}
	transactionIDKeys = []string{"transaction_id", "transactionId"}
)

// NormalizeQrisResponse extracts the QR fields from a loosely typed provider
// response. The fields are read from the "data" envelope when there is one.
// Unknown shapes yield nil fields, never an error; Raw always holds the input.
func NormalizeQrisResponse(raw any) *payment.QrisResult {
	result := &payment.QrisResult{Raw: raw}

	root, ok := raw.(map[string]any)
	if !ok {
		return result
	}

	fields := root
	if data, ok := root["data"].(map[string]any); ok {
		fields = data
	}

	result.QrString = firstString(fields, qrStringKeys)
	result.QrURL = firstString(fields, qrURLKeys)
	result.RedirectURL = firstString(fields, redirectURLKeys)
	result.ProviderTransactionID = firstString(fields, transactionIDKeys)
	return result
}

func firstString(fields map[string]any, keys []string) *string {
	for _, key := range keys {
		if s, ok := asString(fields[key]); ok {
			return &s
		}
	}
	return nil
}

func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return "", false
		}
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	default:
		return "", false
	}
}
