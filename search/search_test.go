package search

import (
	"companion-lab/fixtures"
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"Terms only", "爬山 野餐", Query{RawInput: "爬山 野餐", Terms: "爬山 野餐", Limit: 10}},
		{"Tag flag", "钓鱼 --tag 运动", Query{RawInput: "钓鱼 --tag 运动", Terms: "钓鱼", Tag: "运动", Limit: 10}},
		{"Limit flag", "--limit 3 麻将", Query{RawInput: "--limit 3 麻将", Terms: "麻将", Limit: 3}},
		{"Invalid limit keeps default", "--limit x", Query{RawInput: "--limit x", Limit: 10}},
		{"Dangling flag is a term", "麻将 --tag", Query{RawInput: "麻将 --tag", Terms: "麻将 --tag", Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, *NewSearchQuery(tt.input))
		})
	}
}

func newIndex(t *testing.T) *EventIndex {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	index := NewEventIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))
	for _, e := range fixtures.Events() {
		require.NoError(t, index.Index(e))
	}
	return index
}

func TestEventIndex_Search(t *testing.T) {
	ctx := context.Background()
	index := newIndex(t)

	t.Run("should match every term in the title", func(t *testing.T) {
		ids, err := index.Search(ctx, NewSearchQuery("爬山"))
		require.NoError(t, err)
		require.Equal(t, []string{"e2"}, ids)
	})

	t.Run("should match the destination", func(t *testing.T) {
		ids, err := index.Search(ctx, NewSearchQuery("密云水库"))
		require.NoError(t, err)
		require.Equal(t, []string{"e6"}, ids)
	})

	t.Run("should filter by tag", func(t *testing.T) {
		ids, err := index.Search(ctx, NewSearchQuery("--tag 运动"))
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"e2", "e6"}, ids)
	})

	t.Run("should return nothing when the tag excludes the match", func(t *testing.T) {
		ids, err := index.Search(ctx, NewSearchQuery("麻将 --tag 运动"))
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}

func TestEventIndex_Reindex_Replaces_Document(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := newIndex(t)

	e := fixtures.Events()[0]
	e.Title = "周五读书会"
	e.Tags = []string{"读书"}
	req.NoError(index.Index(e))

	ids, err := index.Search(ctx, NewSearchQuery("麻将"))
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(ctx, NewSearchQuery("--tag 读书"))
	req.NoError(err)
	req.Equal([]string{e.ID}, ids)
}

func TestEventIndex_Clear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("should drop documents left from a previous run", func(t *testing.T) {
		req := require.New(t)
		writer, err := bluge.OpenWriter(bluge.DefaultConfig(dir))
		req.NoError(err)
		stale := fixtures.Events()[0]
		stale.ID = "e-stale"
		stale.Title = "钓鱼大赛"
		req.NoError(NewEventIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug)).Index(stale))
		req.NoError(writer.Close())

		writer, err = bluge.OpenWriter(bluge.DefaultConfig(dir))
		req.NoError(err)
		t.Cleanup(func() { _ = writer.Close() })
		index := NewEventIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))

		req.NoError(index.Clear(ctx))
		for _, e := range fixtures.Events() {
			req.NoError(index.Index(e))
		}
		ids, err := index.Search(ctx, NewSearchQuery("钓鱼"))
		req.NoError(err)
		req.Equal([]string{"e6"}, ids)

		ids, err = index.Search(ctx, NewSearchQuery(""))
		req.NoError(err)
		req.Len(ids, len(fixtures.Events()))
	})

	t.Run("should accept an empty index", func(t *testing.T) {
		writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
		require.NoError(t, err)
		t.Cleanup(func() { _ = writer.Close() })
		require.NoError(t, NewEventIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug)).Clear(ctx))
	})
}
