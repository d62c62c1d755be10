// Copyright © 2018 One Concern

package datastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/oneconcern/rit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages simulates a listing whose page i returns cursors[i] as next cursor
type pages struct {
	cursors []string
	seen    []string
}

func (p *pages) fetch(_ context.Context, cursor string) (string, string, error) {
	i := len(p.seen)
	p.seen = append(p.seen, cursor)
	if i >= len(p.cursors) {
		return "", "", fmt.Errorf("unexpected fetch #%d", i+1)
	}
	return fmt.Sprintf("page %d", i+1), p.cursors[i], nil
}

func newTestPager(input string) (*Pager, *bytes.Buffer, *int) {
	var out bytes.Buffer
	clears := 0
	p := NewPager(strings.NewReader(input), &out, func(io.Writer) { clears++ }, nil)
	return p, &out, &clears
}

func TestPagerFetchesEveryPage(t *testing.T) {
	for _, cursors := range [][]string{
		{""},
		{"c1", ""},
		{"c1", "c2", "c3", ""},
	} {
		src := &pages{cursors: cursors}
		p, out, clears := newTestPager(strings.Repeat("\n", len(cursors)))

		require.NoError(t, p.Run(context.Background(), "", src.fetch))

		assert.Len(t, src.seen, len(cursors))
		assert.Equal(t, Done, p.State())
		assert.Equal(t, len(cursors)-1, *clears)
		assert.Equal(t, len(cursors)-1, strings.Count(out.String(), Prompt))
		for i := range cursors {
			assert.Contains(t, out.String(), fmt.Sprintf("page %d\n", i+1))
		}
	}
}

func TestPagerUsesLatestCursor(t *testing.T) {
	src := &pages{cursors: []string{"c2", "c3", ""}}
	p, _, _ := newTestPager("\n\n")

	require.NoError(t, p.Run(context.Background(), "c1", src.fetch))
	assert.Equal(t, []string{"c1", "c2", "c3"}, src.seen)
}

func TestPagerQuit(t *testing.T) {
	src := &pages{cursors: []string{"c1", "c2", ""}}
	p, out, clears := newTestPager("q\n")

	require.NoError(t, p.Run(context.Background(), "", src.fetch))
	assert.Len(t, src.seen, 1)
	assert.Equal(t, Done, p.State())
	assert.Zero(t, *clears)
	assert.NotContains(t, out.String(), invalidInputNotice)
}

func TestPagerInvalidInput(t *testing.T) {
	src := &pages{cursors: []string{"c1", "c2", ""}}
	p, out, _ := newTestPager("next\n\n")

	require.NoError(t, p.Run(context.Background(), "", src.fetch))
	assert.Len(t, src.seen, 1)
	assert.Contains(t, out.String(), invalidInputNotice)
	assert.Equal(t, Done, p.State())
}

func TestPagerEndOfInput(t *testing.T) {
	src := &pages{cursors: []string{"c1", "c2", ""}}
	p, _, _ := newTestPager("\n")

	require.NoError(t, p.Run(context.Background(), "", src.fetch))
	assert.Len(t, src.seen, 2)
	assert.Equal(t, Done, p.State())
}

func TestPagerWithoutInput(t *testing.T) {
	src := &pages{cursors: []string{"c1", ""}}
	var out bytes.Buffer
	p := NewPager(nil, &out, nil, nil)

	require.NoError(t, p.Run(context.Background(), "", src.fetch))
	assert.Len(t, src.seen, 1)
	assert.NotContains(t, out.String(), Prompt)
}

func TestPagerRepeatedCursorEnds(t *testing.T) {
	src := &pages{cursors: []string{"same", "same"}}
	p, _, _ := newTestPager("\n\n\n")

	require.NoError(t, p.Run(context.Background(), "", src.fetch))
	assert.Equal(t, []string{"", "same"}, src.seen)
}

func TestPagerFetchError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	p, out, _ := newTestPager("\n\n")

	err := p.Run(context.Background(), "", func(_ context.Context, cursor string) (string, string, error) {
		calls++
		if calls == 2 {
			return "", "", boom
		}
		return "page", "c1", nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 2, calls)
	assert.Equal(t, Done, p.State())
	assert.Equal(t, 1, strings.Count(out.String(), "page\n"))
}

func TestPagerSkipsEmptyPages(t *testing.T) {
	p, out, _ := newTestPager("")
	require.NoError(t, p.Run(context.Background(), "", func(context.Context, string) (string, string, error) {
		return "", "", nil
	}))
	assert.Empty(t, out.String())
}

func TestClearTerminal(t *testing.T) {
	var out bytes.Buffer
	ClearTerminal(&out)
	assert.Equal(t, "\x1b[2J\x1b[1;1H", out.String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Fetching", Fetching.String())
	assert.Equal(t, "AwaitingInput", AwaitingInput.String())
	assert.Equal(t, "Done", Done.String())
}
