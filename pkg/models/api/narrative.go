package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// NarrativeSection is one named block of free-text guidance from the
// calculation service.
type NarrativeSection struct {
	Name string
	Text string
}

// Narrative keeps strategy sections in the order the service wrote them.
// encoding/json would load them into an unordered map, so decoding walks the
// raw object with gjson instead; the rendered recommendation list depends on
// this order.
type Narrative struct {
	Sections []NarrativeSection
}

func (n *Narrative) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Sections = nil
		return nil
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("strategy is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("strategy must be a JSON object, got %s", doc.Type)
	}
	n.Sections = nil
	doc.ForEach(func(key, value gjson.Result) bool {
		n.Sections = append(n.Sections, NarrativeSection{
			Name: key.String(),
			Text: value.String(),
		})
		return true
	})
	return nil
}

func (n Narrative) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range n.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		text, err := json.Marshal(s.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(text)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
