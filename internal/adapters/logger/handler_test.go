package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bound/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("file", "entities.yaml")}))
	log.Info("loaded", "count", 3)

	assert.Equal(t, "loaded file=entities.yaml count=3\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	slog.New(h.WithGroup("toolkit")).Warn("empty", "op", "max")

	assert.Equal(t, "! empty toolkit.op=max\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := slog.New(h)
	log.Info("hidden")
	log.Error("shown")

	assert.Equal(t, "✗ shown\n", buf.String())
}

func TestPrettyHandler_AttrsKeepTheirGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("file", "a.yaml")}).WithGroup("load"))
	log.Info("done", "count", 2)

	assert.Equal(t, "done file=a.yaml load.count=2\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil)
	log := slog.New(h.WithGroup("app").WithGroup("inspect"))
	log.Warn("slow", slog.Group("file", "name", "a.yaml"), slog.Attr{})

	assert.Equal(t, "! slow app.inspect.file.name=a.yaml\n", buf.String())
}
