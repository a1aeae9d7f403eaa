// Package tools provides the capability invoker framework: each tool wraps
// one outbound provider call behind typed input/output schemas.
//
// Provider-tier failures (network errors, non-2xx responses, malformed
// payloads, empty result sets) never cross a tool boundary as errors. Every
// tool converts them into a structurally valid degraded output so callers
// always receive a schema-conforming result. Run returns a non-nil error
// only for caller programming errors such as nil input or output.
package tools

import "context"

// ITool is the common surface of every capability invoker.
type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
}

// StartHook observes a tool invocation before the provider call.
type StartHook func(ctx context.Context, tool string, input any)

// EndHook observes a completed tool invocation and its (possibly degraded) output.
type EndHook func(ctx context.Context, tool string, input any, output any)

// ErrorHook observes the underlying provider failure behind a degraded output.
type ErrorHook func(ctx context.Context, tool string, input any, err error)
