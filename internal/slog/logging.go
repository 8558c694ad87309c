package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelNone is a log level that disables all logging.
const LogLevelNone slog.Level = slog.LevelError + 1

// ComponentKey is the slog attribute key used to identify the component.
const ComponentKey = "component"

// LogEnv is the environment variable read by NewLogger.
const LogEnv = "ASYNCTLS_LOG_LEVEL"

// Components used by this module.
const (
	ComponentClient    = "client"
	ComponentEarlyData = "earlydata"
	ComponentTransport = "transport"
	ComponentEventLoop = "eventloop"
)

type logLevels struct {
	Level      slog.Level            // top-level log level
	Components map[string]slog.Level // nil if no component-specific levels
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "none":
		return LogLevelNone, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

// parseLogConfig parses the ASYNCTLS_LOG_LEVEL format:
//   - "info"                             - top-level only
//   - "debug,earlydata=info"             - top-level + component
//   - "client=debug,transport=error"     - components only
func parseLogConfig(config string) (logLevels, error) {
	levels := logLevels{Level: LogLevelNone}
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		component, levelStr, isComponent := strings.Cut(part, "=")
		if !isComponent {
			level, err := parseLogLevel(part)
			if err != nil {
				return logLevels{}, err
			}
			levels.Level = level
			continue
		}
		component = strings.TrimSpace(component)
		level, err := parseLogLevel(strings.TrimSpace(levelStr))
		if err != nil {
			return logLevels{}, fmt.Errorf("component %s: %w", component, err)
		}
		if levels.Components == nil {
			levels.Components = make(map[string]slog.Level)
		}
		levels.Components[component] = level
	}
	return levels, nil
}

type levelFilterHandler struct {
	Component string // empty for top-level

	slog.Handler
	Levels logLevels
}

var _ slog.Handler = &levelFilterHandler{}

func (h *levelFilterHandler) Enabled(_ context.Context, level slog.Level) bool {
	if minLevel, ok := h.Levels.Components[h.Component]; ok {
		return level >= minLevel
	}
	return level >= h.Levels.Level
}

func (h *levelFilterHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.Handler.Handle(ctx, r)
}

func (h *levelFilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.Component
	for _, attr := range attrs {
		if attr.Key == ComponentKey {
			component = attr.Value.String()
		}
	}
	return &levelFilterHandler{Handler: h.Handler.WithAttrs(attrs), Levels: h.Levels, Component: component}
}

func (h *levelFilterHandler) WithGroup(name string) slog.Handler {
	return &levelFilterHandler{Handler: h.Handler.WithGroup(name), Levels: h.Levels, Component: h.Component}
}

// msgLastHandler moves the message behind all other attributes,
// so that lines of one component line up.
type msgLastHandler struct {
	slog.Handler
}

func (h *msgLastHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.String(slog.MessageKey, r.Message))
	r.Message = ""
	return h.Handler.Handle(ctx, r)
}

func (h *msgLastHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &msgLastHandler{h.Handler.WithAttrs(attrs)}
}

func (h *msgLastHandler) WithGroup(name string) slog.Handler {
	return &msgLastHandler{h.Handler.WithGroup(name)}
}

func newHandler(w io.Writer, levels logLevels) slog.Handler {
	return &msgLastHandler{
		Handler: &levelFilterHandler{
			Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug, // filtering is done by levelFilterHandler
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if len(groups) == 0 && a.Key == slog.MessageKey && a.Value.String() == "" {
						return slog.Attr{}
					}
					return a
				},
			}),
			Levels: levels,
		},
	}
}

// NewLoggerFromConfig creates a logger using a level configuration string.
func NewLoggerFromConfig(w io.Writer, config string) (*slog.Logger, error) {
	levels, err := parseLogConfig(config)
	if err != nil {
		return nil, err
	}
	return slog.New(newHandler(w, levels)), nil
}

// NewLogger creates a logger configured by the ASYNCTLS_LOG_LEVEL environment variable.
// An invalid configuration disables logging.
func NewLogger(w io.Writer) *slog.Logger {
	logger, err := NewLoggerFromConfig(w, os.Getenv(LogEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", LogEnv, err)
		return Discard()
	}
	return logger
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return slog.New(newHandler(io.Discard, logLevels{Level: LogLevelNone}))
}

// Component returns a child logger tagged with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(ComponentKey, name)
}
