package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// WireID is a component identifier as it appears on the wire. Older
// producers wrote it as a JSON number (raw Date.now()), newer ones as a
// string; both decode to the same value.
type WireID string

func (id *WireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = WireID(n.String())
	return nil
}

func (id WireID) String() string {
	return string(id)
}

// ConfigSection is one of the two redundant configuration sub-trees
// (config.* and form.*) of a persisted component. After any save produced
// by this system the two are byte-for-byte identical; foreign producers
// may let them diverge.
type ConfigSection struct {
	Data    FieldMap `json:"data,omitempty"`
	Tabs    []Tab    `json:"tabs,omitempty"`
	Title   string   `json:"title,omitempty"`
	Buttons []Button `json:"buttons,omitempty"`
}

// WireComponent is the persisted shape of one placed component.
type WireComponent struct {
	ID     WireID         `json:"id"`
	Icon   string         `json:"icon,omitempty"`
	Type   string         `json:"type"`
	Label  string         `json:"label"`
	Notes  string         `json:"notes"`
	Config *ConfigSection `json:"config,omitempty"`
	Form   *ConfigSection `json:"form,omitempty"`
	Style  *Style         `json:"style"`
}

// FlowEntry is the pared-down component shape in the flow array.
type FlowEntry struct {
	ID     WireID         `json:"id"`
	Type   string         `json:"type"`
	Label  string         `json:"label"`
	Notes  string         `json:"notes"`
	Style  *Style         `json:"style"`
	Config *ConfigSection `json:"config,omitempty"`
}

// WirePayload is the canvas document exchanged with the persistence
// backend. Components is the authoritative array; flow is kept for
// consumers of the older format.
type WirePayload struct {
	Version      int             `json:"version"`
	Components   []WireComponent `json:"components,omitempty"`
	Flow         []FlowEntry     `json:"flow,omitempty"`
	LastModified string          `json:"lastModified,omitempty"`
}

// ParseCanvasData decodes a raw canvasData value, which may arrive either
// as a JSON object or as a JSON string containing the encoded object.
// Malformed input yields ErrParseCanvas; callers treat that as a scenario
// with zero components, never as a fatal load failure.
func ParseCanvasData(raw json.RawMessage) (*WirePayload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, wrapParseErr(err)
		}
		if encoded == "" {
			return nil, nil
		}
		raw = []byte(encoded)
	}

	var payload WirePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, wrapParseErr(err)
	}
	return &payload, nil
}

func wrapParseErr(err error) error {
	return goerr.Wrap(ErrParseCanvas, err.Error())
}

// EncodeCanvasData serializes a payload to the JSON-string form used by
// the legacy direct-save path.
func EncodeCanvasData(p *WirePayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode canvas data")
	}
	return string(data), nil
}
