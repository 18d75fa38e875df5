package tools

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/llm"
)

// CurrentTimeTool reports the current time in a named or custom format,
// optionally in a specific timezone.
type CurrentTimeTool struct {
	now func() time.Time
}

func NewCurrentTimeTool() *CurrentTimeTool {
	return &CurrentTimeTool{now: time.Now}
}

func (t *CurrentTimeTool) Name() string { return "current_time" }

func (t *CurrentTimeTool) Description() string {
	return "Get the current date and time. Supports named formats (rfc3339, rfc822, unix, kitchen, date, time, datetime) and Go layout strings."
}

func (t *CurrentTimeTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Named format or Go layout string. Default: rfc3339.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "IANA timezone name, e.g. \"Europe/Berlin\". Default: local time.",
				},
			},
		},
	}
}

func (t *CurrentTimeTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	now := t.now()

	if tz, ok := agent.GetStringArg(params, "timezone"); ok && tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return agent.ErrorResult("unknown timezone %q", tz), nil
		}
		now = now.In(loc)
	}

	format, _ := agent.GetStringArg(params, "format")
	var out string
	switch strings.ToLower(format) {
	case "", "rfc3339":
		out = now.Format(time.RFC3339)
	case "rfc822":
		out = now.Format(time.RFC822)
	case "unix":
		out = strconv.FormatInt(now.Unix(), 10)
	case "kitchen":
		out = now.Format(time.Kitchen)
	case "date":
		out = now.Format("2006-01-02")
	case "time":
		out = now.Format("15:04:05")
	case "datetime":
		out = now.Format("2006-01-02 15:04:05")
	default:
		// Treat anything else as a Go layout string.
		out = now.Format(format)
	}
	return agent.NewResult(out), nil
}
