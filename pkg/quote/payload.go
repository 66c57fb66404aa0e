package quote

import (
	"encoding/json"
	"fmt"
)

// SharePayload serializes the summary into the text embedded in QR codes
// and share links: a JSON object with keys in the fixed order
// invoiceNumber, dateTime, products, totalAmount. The encoding follows
// struct field order, so repeated calls on equal summaries produce
// byte-identical payloads.
func SharePayload(s Summary) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return string(b), nil
}

// ParseSharePayload reverses SharePayload, reconstructing a summary that is
// field-equal to the one serialized.
func ParseSharePayload(payload string) (Summary, error) {
	var s Summary
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return Summary{}, fmt.Errorf("decode share payload: %w", err)
	}
	return s, nil
}
