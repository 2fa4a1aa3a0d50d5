package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_Resolves(t *testing.T) {
	f := Go(func() (int, error) { return 42, nil })

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGo_Rejects(t *testing.T) {
	boom := errors.New("boom")
	f := Go(func() (string, error) { return "", boom })

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGo_PanicPropagatesToAwaiter(t *testing.T) {
	f := Go(func() (int, error) { panic("kaboom") })

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = f.Await(context.Background())
	})
}

func TestResolvedAndRejected(t *testing.T) {
	v, err := Resolved("x").Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = Rejected[int](errors.New("no")).Await(context.Background())
	assert.EqualError(t, err, "no")
}

func TestAwait_ContextCanceled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	f := Go(func() (int, error) {
		<-block
		return 0, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDone_ClosedAfterSettle(t *testing.T) {
	f := Resolved(1)
	select {
	case <-f.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestAwaitAll(t *testing.T) {
	ok := AwaitAll(context.Background(),
		Resolved(1),
		Go(func() (string, error) { return "a", nil }),
	)
	assert.NoError(t, ok)

	boom := errors.New("boom")
	err := AwaitAll(context.Background(),
		Resolved(1),
		Rejected[string](boom),
	)
	assert.ErrorIs(t, err, boom)
}
