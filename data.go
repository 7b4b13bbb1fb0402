package mathbraille

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// Data is a loosely typed configuration tree, loaded from JSON or YAML.
type Data struct {
	value interface{}
}

func NewData() *Data {
	return &Data{}
}

func (data *Data) String() string {
	return Pretty(data.value)
}

// DataFromFile reads a .yaml/.yml or JSON file.
func DataFromFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := filepath.Ext(path)
	return DataFromBytes(raw, ext == ".yaml" || ext == ".yml")
}

func DataFromBytes(raw []byte, isYAML bool) (*Data, error) {
	var value map[string]interface{}
	var err error
	if isYAML {
		err = yaml.Unmarshal(raw, &value)
	} else {
		err = json.Unmarshal(raw, &value)
	}
	if err != nil {
		return nil, err
	}
	return &Data{value: value}, nil
}

func (data *Data) Put(key string, value interface{}) {
	if data.value == nil {
		data.value = make(map[string]interface{})
	}
	if m := data.AsMap(); m != nil {
		m[key] = value
	}
}

func (data *Data) AsMap() map[string]interface{} {
	if data == nil {
		return nil
	}
	return AsMap(data.value)
}

func (data *Data) Get(keys ...string) interface{} {
	m := data.AsMap()
	for i, key := range keys {
		v, ok := m[key]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return v
		}
		if m = AsMap(v); m == nil {
			return nil
		}
	}
	return nil
}

func (data *Data) Has(keys ...string) bool {
	return data.Get(keys...) != nil
}

func (data *Data) GetString(keys ...string) string {
	return AsString(data.Get(keys...))
}

func (data *Data) GetBool(keys ...string) bool {
	return AsBool(data.Get(keys...))
}

func (data *Data) GetInt(keys ...string) int {
	return AsInt(data.Get(keys...))
}

func AsMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

func AsString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		return *s
	}
	return ""
}

// AsBool treats any non-nil value other than false as true.
func AsBool(v interface{}) bool {
	if v != nil {
		if b, isBool := v.(bool); isBool {
			return b
		}
		return true
	}
	return false
}

func AsInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int32:
		return int(n)
	case int:
		return n
	}
	return 0
}
