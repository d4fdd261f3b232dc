package model

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	mu       sync.Mutex
	frames   []string
	finished []string
}

func (r *recordingRenderer) Render(frame string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recordingRenderer) Finish(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, message)
}

func (r *recordingRenderer) snapshot() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...), append([]string(nil), r.finished...)
}

func blinkerBoard(generations int) *Board {
	return NewBoard(generations, gridFrom(".....", "..x..", "..x..", "..x..", "....."))
}

const (
	blinkerVertical   = ".....\n..X..\n..X..\n..X..\n....."
	blinkerHorizontal = ".....\n.....\n.XXX.\n.....\n....."
)

func TestDriverTick(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(blinkerBoard(2), r, time.Millisecond)

	assert.True(t, d.Tick())
	assert.True(t, d.Tick())
	assert.False(t, d.Tick())

	frames, finished := r.snapshot()
	assert.Equal(t, []string{blinkerHorizontal, blinkerVertical}, frames)
	assert.Equal(t, []string{GameOverMessage}, finished)
	assert.Equal(t, 2, d.Stats().TotalGenerations)
	assert.Equal(t, 3, d.Stats().Population)
}

func TestDriverRunZeroGenerations(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(blinkerBoard(0), r, time.Hour)

	require.NoError(t, d.Run(context.Background()))

	frames, finished := r.snapshot()
	assert.Empty(t, frames)
	assert.Equal(t, []string{GameOverMessage}, finished)
}

func TestDriverRunToCompletion(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(blinkerBoard(3), r, time.Millisecond)

	require.NoError(t, d.Run(context.Background()))

	frames, finished := r.snapshot()
	assert.Equal(t, []string{blinkerHorizontal, blinkerVertical, blinkerHorizontal}, frames)
	assert.Equal(t, []string{GameOverMessage}, finished)
}

func TestDriverFirstRenderIsImmediate(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(blinkerBoard(5), r, time.Hour)

	d.Start(context.Background())
	require.Eventually(t, func() bool {
		frames, _ := r.snapshot()
		return len(frames) == 1
	}, time.Second, time.Millisecond)

	d.Stop()
	assert.ErrorIs(t, d.Wait(), context.Canceled)

	frames, finished := r.snapshot()
	assert.Len(t, frames, 1)
	assert.Empty(t, finished)
}

func TestDriverStartWait(t *testing.T) {
	r := &recordingRenderer{}
	d := NewDriver(blinkerBoard(2), r, time.Millisecond)

	d.Start(context.Background())
	d.Start(context.Background())
	require.NoError(t, d.Wait())

	frames, finished := r.snapshot()
	assert.Len(t, frames, 2)
	assert.Equal(t, []string{GameOverMessage}, finished)

	d.Stop()
	assert.NoError(t, d.Wait())
}

func TestDriverWaitWithoutStart(t *testing.T) {
	d := NewDriver(blinkerBoard(1), &recordingRenderer{}, 0)
	assert.Equal(t, DefaultInterval, d.interval)
	d.Stop()
	assert.NoError(t, d.Wait())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}

	r.Render(blinkerVertical)
	r.Finish(GameOverMessage)

	assert.Equal(t, blinkerVertical+"\n"+GameOverMessage+"\n", buf.String())
}
