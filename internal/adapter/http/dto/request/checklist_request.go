package request

import (
	"bytes"
	"encoding/json"
	"io"

	"turnover_service/internal/domain/entities"
)

// ParseChecklistUpdate reads a PATCH /jobs/:id/checklist body.
//
// Keys are visited in the order they were supplied. Unknown keys are skipped;
// the first recognized key whose value is not a JSON boolean fails the whole
// body. An empty result is not an error here.
func ParseChecklistUpdate(raw []byte) ([]entities.ChecklistUpdate, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, errBodyNotObject
	}

	var updates []entities.ChecklistUpdate
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errBodyNotObject
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errBodyNotObject
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errBodyNotObject
		}
		if !entities.IsChecklistField(key) {
			continue
		}

		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			return nil, errBodyNotObject
		}
		b, ok := Boolean(decoded)
		if !ok {
			return nil, booleanError(key)
		}
		updates = append(updates, entities.ChecklistUpdate{Field: key, Value: b})
	}

	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return nil, errBodyNotObject
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errBodyNotObject
	}

	return updates, nil
}
