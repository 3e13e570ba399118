//
// See the file COPYRIGHT for copyright information.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package log provides a human-friendly slog.Handler for local development.
// It writes colorized "LEVEL: message {attrs}" lines rather than JSON.
package log

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

const (
	timeFormat = "[15:04:05.000]"

	reset = "\033[0m"

	lightGray = 37
	lightRed  = 91
	lightBlue = 94
	white     = 97

	darkGray  = 90
	red       = 31
	yellow    = 33
	magenta   = 35
	cyan      = 36
)

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

type Handler struct {
	h slog.Handler
	r func([]string, slog.Attr) slog.Attr
	b *bufferPool

	mu               *sync.Mutex
	writer           io.Writer
	outputEmptyAttrs bool
}

type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, 0, 1024)
				return &b
			},
		},
	}
}

type sliceWriter struct {
	b *[]byte
}

func (w sliceWriter) Write(p []byte) (int, error) {
	*w.b = append(*w.b, p...)
	return len(p), nil
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		h:                h.h.WithAttrs(attrs),
		r:                h.r,
		b:                h.b,
		mu:               h.mu,
		writer:           h.writer,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		h:                h.h.WithGroup(name),
		r:                h.r,
		b:                h.b,
		mu:               h.mu,
		writer:           h.writer,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

func (h *Handler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	bufp := h.b.pool.Get().(*[]byte)
	defer func() {
		*bufp = (*bufp)[:0]
		h.b.pool.Put(bufp)
	}()

	h.mu.Lock()
	inner := slog.NewJSONHandler(sliceWriter{b: bufp}, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: suppressDefaults(h.r),
	})
	err := inner.Handle(ctx, r)
	h.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err = json.Unmarshal(*bufp, &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var level string
	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = levelAttr.Value.String() + ":"

		switch {
		case r.Level <= slog.LevelDebug:
			level = colorize(lightGray, level)
		case r.Level <= slog.LevelInfo:
			level = colorize(cyan, level)
		case r.Level < slog.LevelWarn:
			level = colorize(lightBlue, level)
		case r.Level < slog.LevelError:
			level = colorize(yellow, level)
		case r.Level <= slog.LevelError+1:
			level = colorize(red, level)
		default:
			level = colorize(lightRed, level)
		}
	}

	var timestamp string
	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(timeFormat)),
	}
	if h.r != nil {
		timeAttr = h.r([]string{}, timeAttr)
	}
	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = colorize(lightGray, timeAttr.Value.String())
	}

	var msg string
	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}
	if !msgAttr.Equal(slog.Attr{}) {
		msg = colorize(white, msgAttr.Value.String())
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte
	if h.outputEmptyAttrs || len(attrs) > 0 {
		attrsAsBytes, err = json.MarshalIndent(attrs, "", "  ")
		if err != nil {
			return fmt.Errorf("error when marshaling attrs: %w", err)
		}
	}

	out := make([]byte, 0, 128)
	if len(timestamp) > 0 {
		out = append(out, timestamp...)
		out = append(out, ' ')
	}
	if len(level) > 0 {
		out = append(out, level...)
		out = append(out, ' ')
	}
	if len(msg) > 0 {
		out = append(out, msg...)
		out = append(out, ' ')
	}
	if len(attrsAsBytes) > 0 {
		out = append(out, colorize(darkGray, string(attrsAsBytes))...)
	}
	out = append(out, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(out)
	return err
}

func suppressDefaults(
	next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}
		if next == nil {
			return a
		}
		return next(groups, a)
	}
}

// New creates a Handler that writes colorized lines to the configured
// destination (stderr by default).
func New(handlerOptions *slog.HandlerOptions, options ...Option) *Handler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	b := newBufferPool()
	handler := &Handler{
		b: b,
		h: slog.NewJSONHandler(sliceWriter{b: new([]byte)}, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:  handlerOptions.ReplaceAttr,
		mu: &sync.Mutex{},
	}

	for _, opt := range options {
		opt(handler)
	}

	if handler.writer == nil {
		handler.writer = io.Discard
	}

	return handler
}

type Option func(h *Handler)

// WithDestinationWriter sets the io.Writer to which log lines are written.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *Handler) {
		h.writer = writer
	}
}

// WithOutputEmptyAttrs makes the handler print the attrs object even when
// a record carries no attributes.
func WithOutputEmptyAttrs() Option {
	return func(h *Handler) {
		h.outputEmptyAttrs = true
	}
}
