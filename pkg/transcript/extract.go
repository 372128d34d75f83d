// Package transcript parses recorded agent chat sessions and derives the
// tool-call sequence and metadata the classifier consumes.
package transcript

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/revcheck/revcheck/pkg/workflow"
)

// namespaceMarker prefixes tool names that were recorded through an MCP
// client, e.g. "mcp__github__create_issue". The marker and the server
// segment are stripped so only the canonical tool name remains.
const namespaceMarker = "mcp__"

// ExtractSequence derives the ordered tool-call sequence from a raw
// transcript document. A transcript holds zero or more requests, each with
// zero or more rounds of tool invocations. Malformed documents and
// documents without tool calls both yield an empty sequence; "no tools
// used" is a valid result, not an error.
func ExtractSequence(data []byte) workflow.Sequence {
	seq := workflow.Sequence{}
	if !gjson.ValidBytes(data) {
		return seq
	}

	doc := gjson.ParseBytes(data)
	doc.Get("requests").ForEach(func(_, req gjson.Result) bool {
		req.Get("rounds").ForEach(func(_, round gjson.Result) bool {
			calls := round.Get("toolCalls")
			if !calls.Exists() {
				calls = round.Get("tool_calls")
			}
			calls.ForEach(func(_, call gjson.Result) bool {
				if name := call.Get("name").String(); name != "" {
					seq = append(seq, StripNamespace(name))
				}
				return true
			})
			return true
		})
		return true
	})

	return seq
}

// StripNamespace removes a leading "mcp__<server>__" prefix from a recorded
// tool name. Names without the marker are returned unchanged.
func StripNamespace(name string) string {
	if !strings.HasPrefix(name, namespaceMarker) {
		return name
	}

	rest := name[len(namespaceMarker):]
	idx := strings.Index(rest, "__")
	if idx < 0 {
		return name
	}

	return rest[idx+2:]
}
