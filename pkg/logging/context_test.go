package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil))
}

func TestContextFieldCarriage(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithStage(ctx, "transform")
	ctx = WithVenue(ctx, "venue-fairmont-singapore")
	ctx = WithSource(ctx, "directory-a")

	Ctx(ctx).Info().Msg("record processed")

	out := buf.String()
	assert.Contains(t, out, `"stage":"transform"`)
	assert.Contains(t, out, `"venue_id":"venue-fairmont-singapore"`)
	assert.Contains(t, out, `"source":"directory-a"`)
}
