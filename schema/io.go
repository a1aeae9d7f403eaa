package schema

import "encoding/json"

// Input is a plain chat message input schema.
type Input struct {
	Base
	// ChatMessage the message sent by the user
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user." validate:"required"`
}

// NewInput returns a new chat Input
func NewInput(msg string) *Input {
	return &Input{ChatMessage: msg}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is a plain chat message output schema.
type Output struct {
	Base
	// ChatMessage the response message generated by the assistant
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The response message." validate:"required"`
}

// NewOutput returns a new chat Output
func NewOutput(msg string) *Output {
	return &Output{ChatMessage: msg}
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
