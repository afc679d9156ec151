package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
)

func sampleArtifact(count int) *domain.Artifact {
	items := make([]domain.AggregatedItem, count)
	for i := range items {
		items[i] = domain.AggregatedItem{ID: string(rune('a' + i)), Title: "t", URL: "https://example.com/" + string(rune('a'+i))}
	}
	return &domain.Artifact{GeneratedAt: "2024-05-01T00:00:00.000Z", Count: count, Items: items}
}

func TestSink_WriteCreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "entertainment.json")
	sink := NewSink(path)

	require.NoError(t, sink.Write(context.Background(), sampleArtifact(2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Artifact
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Count)
	assert.Len(t, decoded.Items, 2)
	assert.Equal(t, path, sink.Target())
}

func TestSink_WriteOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	sink := NewSink(path)

	require.NoError(t, sink.Write(context.Background(), sampleArtifact(3)))
	require.NoError(t, sink.Write(context.Background(), sampleArtifact(1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded domain.Artifact
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSink_FailureLeavesPriorArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, NewSink(path).Write(context.Background(), sampleArtifact(2)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// A directory at the target path makes the final rename fail.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o755))
	err = NewSink(blocked).Write(context.Background(), sampleArtifact(1))
	require.Error(t, err)
	assert.True(t, coreerrors.IsPersistence(err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.json")
	err := NewSink(path).Write(ctx, sampleArtifact(1))

	require.Error(t, err)
	assert.True(t, coreerrors.IsPersistence(err))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
