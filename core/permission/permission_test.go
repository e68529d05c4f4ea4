package permission

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/testutils"
)

func newTestPrompter(t *testing.T, requester Requester) *Prompter {
	t.Helper()
	p, err := NewPrompter(requester, testutils.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestPrompter_GrantedDelegates(t *testing.T) {
	requester := testutils.NewFakeRequester(true, true)
	p := newTestPrompter(t, requester)
	assert.True(t, p.Granted())

	requester.SetGranted(false)
	assert.False(t, p.Granted())
}

func TestPrompter_CallbackFiresExactlyOnce(t *testing.T) {
	requester := testutils.NewFakeRequester(false, true)
	p := newTestPrompter(t, requester)

	var grants, callbacks atomic.Int32
	done := make(chan struct{})
	p.Prompt(
		func() { grants.Add(1) },
		func(granted bool) {
			assert.True(t, granted)
			callbacks.Add(1)
			close(done)
		},
	)

	select {
	case <-done:
	case <-time.After(testutils.TestTimeout):
		t.Fatal("callback never fired")
	}

	// Give a buggy implementation a chance to double-fire.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), grants.Load())
	assert.Equal(t, int32(1), callbacks.Load())
}

func TestPrompter_DeniedSkipsGrantAction(t *testing.T) {
	requester := testutils.NewFakeRequester(false, false)
	p := newTestPrompter(t, requester)

	var grants atomic.Int32
	done := make(chan bool, 1)
	p.Prompt(func() { grants.Add(1) }, func(granted bool) { done <- granted })

	select {
	case granted := <-done:
		assert.False(t, granted)
	case <-time.After(testutils.TestTimeout):
		t.Fatal("callback never fired")
	}
	assert.Equal(t, int32(0), grants.Load())
}

func TestPrompter_CancelSkipsCallback(t *testing.T) {
	requester := testutils.NewFakeRequester(false, true)
	requester.Block()
	p := newTestPrompter(t, requester)

	fired := make(chan struct{}, 1)
	p.Prompt(func() { fired <- struct{}{} }, func(bool) { fired <- struct{}{} })

	assert.Eventually(t, func() bool { return requester.Requests() == 1 },
		testutils.TestTimeout, testutils.TestInterval)

	p.Cancel()
	requester.Unblock()

	select {
	case <-fired:
		t.Fatal("cancelled prompt must not fire callbacks")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPrompter_NewPromptCancelsPrevious(t *testing.T) {
	requester := testutils.NewFakeRequester(false, true)
	requester.Block()
	p := newTestPrompter(t, requester)

	firstFired := make(chan struct{}, 1)
	p.Prompt(nil, func(bool) { firstFired <- struct{}{} })

	assert.Eventually(t, func() bool { return requester.Requests() == 1 },
		testutils.TestTimeout, testutils.TestInterval)

	secondDone := make(chan bool, 1)
	p.Prompt(nil, func(granted bool) { secondDone <- granted })

	requester.Unblock()

	select {
	case granted := <-secondDone:
		assert.True(t, granted)
	case <-time.After(testutils.TestTimeout):
		t.Fatal("second prompt callback never fired")
	}

	select {
	case <-firstFired:
		t.Fatal("superseded prompt must not fire its callback")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPrompter_NilCallbacksAreSafe(t *testing.T) {
	requester := testutils.NewFakeRequester(false, true)
	p := newTestPrompter(t, requester)

	p.Prompt(nil, nil)
	assert.Eventually(t, func() bool { return requester.Requests() == 1 },
		testutils.TestTimeout, testutils.TestInterval)
}
