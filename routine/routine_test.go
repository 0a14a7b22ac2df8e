package routine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTry(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		called := false
		rec := Try(func() { called = true })
		assert.True(t, called)
		assert.Nil(t, rec)
	})

	t.Run("panic", func(t *testing.T) {
		rec := Try(func() { panic("boom") })
		require.NotNil(t, rec)
		assert.Equal(t, "boom", rec.Value)
		assert.NotEmpty(t, rec.Callers)
	})
}

func TestRecovered_AsError(t *testing.T) {
	var nilRec *Recovered
	assert.NoError(t, nilRec.AsError())

	rec := Try(func() { panic("boom") })
	require.NotNil(t, rec)

	err := rec.AsError()
	require.Error(t, err)
	assert.Equal(t, "panic: boom", err.Error())

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.NotEmpty(t, pe.StackTrace())
	assert.Contains(t, fmt.Sprintf("%+v", pe), "panic: boom")
}

func TestGo(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		done := make(chan struct{})
		Go(func() { close(done) }, nil)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("fn did not run")
		}
	})

	t.Run("panic handed to onPanic", func(t *testing.T) {
		recs := make(chan *Recovered, 1)
		Go(func() { panic("boom") }, func(rec *Recovered) { recs <- rec })
		select {
		case rec := <-recs:
			assert.Equal(t, "boom", rec.Value)
		case <-time.After(time.Second):
			t.Fatal("onPanic was not called")
		}
	})

	t.Run("panic with nil onPanic is discarded", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Go(func() { panic("boom") }, nil)
			time.Sleep(10 * time.Millisecond)
		})
	})
}
