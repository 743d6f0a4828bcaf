// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package status

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatField is a named template. Rendering stores the result in the
// record under ID, so later fields can reference earlier ones.
type FormatField struct {
	ID       string `json:"id" validate:"required,max=64,fieldid"`
	Template string `json:"template" validate:"max=4096"`
}

// DefaultFormatFields is what a fresh installation starts with.
func DefaultFormatFields() []FormatField {
	return []FormatField{{
		ID:       "status_message",
		Template: "Seen [ ${last_seen_formatted} ] Watching ( ${last_played} )",
	}}
}

// Render replaces every ${key} in template with record[key]. Unknown keys
// and zero values render as "". Substituted values are not scanned again,
// and an unterminated "${" is copied literally.
func Render(template string, record Record) string {
	if !strings.Contains(template, "${") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			break
		}
		name := rest[start+2 : start+2+end]
		// A stray "${" before the closing brace: keep it literal and
		// restart at the innermost opener.
		if inner := strings.LastIndex(name, "${"); inner >= 0 {
			b.WriteString(rest[:start+2+inner])
			rest = rest[start+2+inner:]
			continue
		}
		b.WriteString(rest[:start])
		b.WriteString(Stringify(record[name]))
		rest = rest[start+2+end+1:]
	}
	b.WriteString(rest)
	return b.String()
}

// ApplyFormatFields renders fields in order into record and returns it.
func ApplyFormatFields(fields []FormatField, record Record) Record {
	for _, f := range fields {
		record[f.ID] = Render(f.Template, record)
	}
	return record
}

// Stringify renders a record value for templates. nil, "", 0 and false
// become "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if !t {
			return ""
		}
		return "true"
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
