// Package template renders outreach message bodies (send_followup,
// send_inmail, comment_post node configs) against lead/execution variables.
// Adapted from the teacher's internal/application/executor/template.go
// TemplateProcessor: {{variable}} simple lookups plus ${expression} support
// via expr-lang/expr for composed values.
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	simpleVarPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	exprPattern      = regexp.MustCompile(`\$\{([^}]+)\}`)
)

// Render substitutes {{path.to.field}} and ${expression} placeholders in s
// using vars. Unlike the teacher's strict mode, rendering here is always
// lenient: a placeholder that can't be resolved is left as-is, since a
// partially-personalized outreach message is preferable to a failed step.
func Render(s string, vars map[string]any) string {
	if !strings.Contains(s, "{{") && !strings.Contains(s, "${") {
		return s
	}

	result := s

	for _, match := range exprPattern.FindAllStringSubmatch(result, -1) {
		if len(match) < 2 {
			continue
		}
		placeholder, expression := match[0], match[1]
		if value, err := evaluate(expression, vars); err == nil && value != nil {
			result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
		}
	}

	for _, match := range simpleVarPattern.FindAllStringSubmatch(result, -1) {
		if len(match) < 2 {
			continue
		}
		placeholder := match[0]
		path := strings.TrimSpace(match[1])
		if value := nestedValue(vars, path); value != nil {
			result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
		}
	}

	return result
}

// RenderConfig applies Render to every string value in a node config map,
// recursing into nested maps and slices.
func RenderConfig(config map[string]any, vars map[string]any) map[string]any {
	out := make(map[string]any, len(config))
	for k, v := range config {
		out[k] = renderValue(v, vars)
	}
	return out
}

func renderValue(v any, vars map[string]any) any {
	switch val := v.(type) {
	case string:
		return Render(val, vars)
	case map[string]any:
		return RenderConfig(val, vars)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = renderValue(item, vars)
		}
		return out
	default:
		return v
	}
}

func evaluate(expression string, vars map[string]any) (any, error) {
	program, err := expr.Compile(expression, expr.Env(vars), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return expr.Run(program, vars)
}

func nestedValue(vars map[string]any, path string) any {
	parts := strings.Split(path, ".")
	var current any = vars
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}
