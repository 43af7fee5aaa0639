package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {

	type test struct {
		n       int
		workers int
		chunks  int
	}

	tests := map[string]test{
		"empty": {
			n:       0,
			workers: 4,
			chunks:  0,
		},
		"fewer-items-than-workers": {
			n:       3,
			workers: 8,
			chunks:  3,
		},
		"even": {
			n:       100,
			workers: 4,
			chunks:  4,
		},
		"uneven": {
			n:       10,
			workers: 4,
			chunks:  4,
		},
		"single-worker": {
			n:       10,
			workers: 1,
			chunks:  1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			visits := make([]int32, tt.n)
			var chunks int32
			err := Chunks(context.Background(), tt.n, tt.workers, func(from, to int) error {
				atomic.AddInt32(&chunks, 1)
				for i := from; i < to; i++ {
					visits[i]++
				}
				return nil
			})
			assert.NoError(t, err)
			assert.Equal(t, int32(tt.chunks), chunks)
			for i, v := range visits {
				assert.Equal(t, int32(1), v, "index %d", i)
			}
		})
	}
}

func TestChunks_DefaultWorkers(t *testing.T) {
	var count int32
	err := Chunks(context.Background(), 50, 0, func(from, to int) error {
		atomic.AddInt32(&count, int32(to-from))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(50), count)
}

func TestChunks_Error(t *testing.T) {
	failure := errors.New("failure")
	err := Chunks(context.Background(), 10, 2, func(from, to int) error {
		if from == 0 {
			return failure
		}
		return nil
	})
	assert.ErrorIs(t, err, failure)
}

func TestChunks_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	err := Chunks(ctx, 10, 2, func(from, to int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls)
}
