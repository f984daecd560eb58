package store

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"doru/internal/task"
)

// document is the on-disk shape of a store.
type document struct {
	LastID int         `json:"last_id" yaml:"last_id" toml:"last_id"`
	Tasks  []task.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// legacyRecord is a task as written by releases that stored a bare JSON array.
type legacyRecord struct {
	ID      int         `json:"id"`
	Content string      `json:"content"`
	Status  task.Status `json:"status"`
}

// codec converts a document to and from file bytes.
type codec interface {
	Name() string
	Encode(doc document) ([]byte, error)
	Decode(data []byte, doc *document) error
}

// codecFor picks the codec from the file extension. JSON is the default.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".toml":
		return tomlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(doc document) ([]byte, error) {
	b, err := json.Marshal(doc, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (jsonCodec) Decode(data []byte, doc *document) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return decodeLegacy(trimmed, doc)
	}
	return json.Unmarshal(trimmed, doc, json.RejectUnknownMembers(true))
}

// decodeLegacy reads a bare array of records. The ID counter is left at
// zero and recomputed from the task IDs.
func decodeLegacy(data []byte, doc *document) error {
	var records []legacyRecord
	if err := json.Unmarshal(data, &records, json.RejectUnknownMembers(true)); err != nil {
		return err
	}
	doc.LastID = 0
	doc.Tasks = make([]task.Task, 0, len(records))
	for _, r := range records {
		doc.Tasks = append(doc.Tasks, task.Task{
			ID:          r.ID,
			Description: r.Content,
			Status:      r.Status,
		})
	}
	return nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(doc document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (yamlCodec) Decode(data []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(doc)
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Encode(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Decode(data []byte, doc *document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}
