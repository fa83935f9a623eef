package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestShowPreview_NoPNG(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	var out bytes.Buffer

	showPreview(zap.New(core), "", &out)

	assert.Equal(t, 1, logs.FilterMessage("preview skipped: no png output configured").Len())
	assert.Zero(t, out.Len())
}

func TestShowPreview_MissingFile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := filepath.Join(t.TempDir(), "absent.png")

	showPreview(zap.New(core), path, &bytes.Buffer{})

	failed := logs.FilterMessage("preview failed").All()
	if assert.Len(t, failed, 1) {
		ctx := failed[0].ContextMap()
		assert.Equal(t, path, ctx["path"])
		assert.Contains(t, ctx, "error")
	}
}
