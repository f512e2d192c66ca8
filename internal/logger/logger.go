package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Fields map[string]any

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

var sensitiveKeys = map[string]struct{}{
	"authorization":    {},
	"channelkey":       {},
	"channel_key":      {},
	"channelkeyhash":   {},
	"channel_key_hash": {},
}

// Init sets the global level. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log = log.Level(lvl)
}

// SetOutput redirects log output; tests use it to capture lines.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

func Info(message string, fields Fields) {
	withFields(log.Info(), fields).Msg(message)
}

func Error(message string, err error, fields Fields) {
	e := log.Error()
	if err != nil {
		e = e.Err(err)
	}
	withFields(e, fields).Msg(message)
}

// SanitizePayload deep-copies payload through JSON and masks values of
// sensitive keys, so request bodies and headers can be logged as-is.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func withFields(e *zerolog.Event, fields Fields) *zerolog.Event {
	if len(fields) == 0 {
		return e
	}

	sanitized, ok := SanitizePayload(fields).(map[string]any)
	if !ok {
		return e.Interface("fields", sanitized)
	}
	for key, value := range sanitized {
		e = e.Interface(key, value)
	}
	return e
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
