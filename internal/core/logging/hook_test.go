package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both repo and pr",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithRepo(ctx, "/home/dev/widgets")
				ctx = WithPR(ctx, 42)
				return ctx
			},
			wantKeys: []string{"repo", "pr"},
		},
		{
			name: "only repo",
			setupCtx: func() context.Context {
				return WithRepo(context.Background(), "/home/dev/widgets")
			},
			wantKeys:  []string{"repo"},
			wantEmpty: []string{"pr"},
		},
		{
			name: "only pr",
			setupCtx: func() context.Context {
				return WithPR(context.Background(), 42)
			},
			wantKeys:  []string{"pr"},
			wantEmpty: []string{"repo"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"repo", "pr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}

func TestContextHook_ThroughComponentLogger(t *testing.T) {
	// The hook is installed once on the root logger; component loggers
	// derive from it, so events logged with .Ctx pick up the fields.
	var buf bytes.Buffer
	prev := log.Logger
	defer func() { log.Logger = prev }()
	log.Logger = zerolog.New(&buf).Hook(ContextHook{})

	ctx := WithPR(WithRepo(context.Background(), "git@github.com:acme/widgets.git"), 42)
	logger := Component("review")
	logger.Info().Ctx(ctx).Msg("threads loaded")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if logEntry["repo"] != "git@github.com:acme/widgets.git" {
		t.Errorf("expected repo field, got %v", logEntry["repo"])
	}
	if logEntry["pr"] != float64(42) {
		t.Errorf("expected pr field, got %v", logEntry["pr"])
	}
	if logEntry["cmp"] != "review" {
		t.Errorf("expected cmp field, got %v", logEntry["cmp"])
	}
}
