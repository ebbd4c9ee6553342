package stackdriver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a generic decoded API resource. Field names mirror the JSON
// returned by the server; typed accessors are provided for the fields the
// API assigns on every resource.
type Record map[string]interface{}

// ID returns the server-assigned identifier, or the empty string if the
// record has not been created yet. Numeric identifiers are rendered in
// decimal.
func (r Record) ID() string {
	value, ok := r["id"]
	if !ok {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatInt(int64(typed), 10)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// ResourcePath returns the server-assigned resource path
// (e.g. "/groups/42/"), or the empty string when absent.
func (r Record) ResourcePath() string {
	path, _ := r["resource"].(string)

	return path
}

// Collection parses the owning collection name out of the resource path.
// Returns the empty string when the record carries no resource path.
func (r Record) Collection() string {
	return CollectionFromResourcePath(r.ResourcePath())
}

// DeletedEpoch returns the deletion timestamp in epoch seconds, or zero if
// the record has not been deleted.
func (r Record) DeletedEpoch() int64 {
	switch typed := r["deleted_epoch"].(type) {
	case float64:
		return int64(typed)
	case int64:
		return typed
	case int:
		return int64(typed)
	default:
		return 0
	}
}

// StringField returns the named field as a string, or the empty string when
// the field is absent or not a string.
func (r Record) StringField(name string) string {
	value, _ := r[name].(string)

	return value
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	copied := make(Record, len(r))
	for key, value := range r {
		copied[key] = value
	}

	return copied
}

// Meta carries result set metadata returned alongside the data. Its contents
// are passed through verbatim; no pagination protocol is layered on top.
type Meta map[string]interface{}

// Envelope is the wire envelope wrapping every successful response body.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta Meta            `json:"meta,omitempty"`
}

// UnwrapRecord decodes a response body whose data field holds a single
// resource object.
func UnwrapRecord(body []byte) (Record, error) {
	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var record Record

	err = json.Unmarshal(envelope.Data, &record)
	if err != nil {
		return nil, fmt.Errorf("decoding result data: %w", err)
	}

	return record, nil
}

// UnwrapRecords decodes a response body whose data field holds either an
// array of resources or, for convenience, a single resource object.
func UnwrapRecords(body []byte) ([]Record, error) {
	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(envelope.Data))
	if strings.HasPrefix(trimmed, "{") {
		var record Record

		err = json.Unmarshal(envelope.Data, &record)
		if err != nil {
			return nil, fmt.Errorf("decoding result data: %w", err)
		}

		return []Record{record}, nil
	}

	records := []Record{}

	err = json.Unmarshal(envelope.Data, &records)
	if err != nil {
		return nil, fmt.Errorf("decoding result data: %w", err)
	}

	return records, nil
}

func decodeEnvelope(body []byte) (*Envelope, error) {
	var envelope Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decoding result envelope: %w", err)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, ErrMissingData
	}

	return &envelope, nil
}

// CollectionFromResourcePath parses the collection name from a resource path
// of the form "/<collection>/<id>" or "/<collection>/<id>/".
func CollectionFromResourcePath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	return strings.ToLower(parts[len(parts)-2])
}
