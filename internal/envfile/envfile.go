// Package envfile reads and patches the shell-sourceable KEY=VALUE files
// that older wrangler-profiles releases used as their only storage format.
// Those files may be hand-edited and sourced by shells, so parsing is
// tolerant: comments, blank lines, `export ` prefixes, and lines without a
// key/value shape are skipped rather than rejected.
package envfile

import (
	"bufio"
	"fmt"
	"strings"
)

// Parse reads env file content into a key-value map.
// Malformed lines are ignored; later occurrences of a key win.
func Parse(content string) map[string]string {
	env := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// Patch updates env file content with the provided key/value pairs while
// preserving comments, unknown keys, and line order. Keys already present
// are rewritten in place at their first occurrence (duplicates dropped);
// new keys are appended. Empty update values are skipped.
func Patch(content string, updates map[string]string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	firstIndex := make(map[string]int)
	for i, line := range lines {
		key, _, ok := parseLine(line)
		if !ok {
			continue
		}
		if _, exists := firstIndex[key]; !exists {
			firstIndex[key] = i
		}
	}

	updated := make(map[string]bool)
	for key, value := range updates {
		if value == "" {
			continue
		}
		entry := fmt.Sprintf("%s=%s", key, encodeValue(value))
		if idx, ok := firstIndex[key]; ok {
			lines[idx] = entry
		} else {
			if len(lines) > 0 && lines[len(lines)-1] == "" {
				lines = lines[:len(lines)-1]
			}
			lines = append(lines, entry, "")
			firstIndex[key] = len(lines) - 2
		}
		updated[key] = true
	}

	if len(updated) == 0 {
		return strings.Join(lines, "\n")
	}

	filtered := make([]string, 0, len(lines))
	for i, line := range lines {
		key, _, ok := parseLine(line)
		if ok && updated[key] && firstIndex[key] != i {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}

// parseLine extracts a key/value pair from a single line when present.
func parseLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	value := strings.TrimSpace(trimmed[idx+1:])
	if strings.HasPrefix(value, `"`) {
		if decoded, ok := decodeQuotedValue(value); ok {
			value = decoded
		}
	}
	return key, value, true
}

// decodeQuotedValue strips surrounding double quotes and the escape forms
// produced by encodeValue. Unterminated quotes leave the value untouched.
func decodeQuotedValue(value string) (string, bool) {
	closing := -1
	escaped := false
	for i := 1; i < len(value); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch value[i] {
		case '\\':
			escaped = true
		case '"':
			closing = i
		}
		if closing >= 0 {
			break
		}
	}
	if closing < 0 {
		return "", false
	}

	var b strings.Builder
	payload := value[1:closing]
	b.Grow(len(payload))
	for i := 0; i < len(payload); i++ {
		if payload[i] == '\\' && i+1 < len(payload) {
			switch payload[i+1] {
			case '\\', '"':
				b.WriteByte(payload[i+1])
				i++
				continue
			}
		}
		b.WriteByte(payload[i])
	}
	return b.String(), true
}

// encodeValue quotes a value when it would not survive a round trip bare.
func encodeValue(val string) string {
	if strings.ContainsAny(val, " \t#\"") {
		val = strings.ReplaceAll(val, `\`, `\\`)
		val = strings.ReplaceAll(val, `"`, `\"`)
		return `"` + val + `"`
	}
	return val
}
