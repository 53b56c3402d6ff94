package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAddKeepsMostRecentFirstWithoutDuplicates(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(newTestState(t))
	ctx := context.Background()

	service.Add(ctx, "rice")
	service.Add(ctx, "milk")
	service.Add(ctx, "rice")

	assert.Equal(t, []string{"rice", "milk"}, service.List(ctx))
}

func TestHistoryIsCappedAtLimit(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(newTestState(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		service.Add(ctx, fmt.Sprintf("term-%d", i))
	}

	history := service.List(ctx)
	require.Len(t, history, MaxHistoryItems)
	assert.Equal(t, "term-14", history[0])
	assert.Equal(t, "term-5", history[len(history)-1])
}

func TestHistoryIgnoresBlankTermsAndClears(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(newTestState(t))
	ctx := context.Background()

	service.Add(ctx, "   ")
	assert.Empty(t, service.List(ctx))

	service.Add(ctx, " tea ")
	assert.Equal(t, []string{"tea"}, service.List(ctx))

	service.Clear(ctx)
	assert.Empty(t, service.List(ctx))
}
