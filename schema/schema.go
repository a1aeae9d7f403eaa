package schema

import "encoding/json"

// Schema is the contract for typed message payloads exchanged between
// agents, tools and the LLM client.
type Schema interface {
	String() string
}

// Stringify serializes a schema for use as chat message content.
func Stringify(s Schema) string {
	if v, ok := s.(String); ok {
		return string(v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Base is a base schema
type Base struct{}

// String implements Schema interface
func (r Base) String() string {
	return ""
}
