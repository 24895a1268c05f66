// Package testutil provides shared test helpers for gameloop.
//
// # Fixtures
//
// The fixtures.go file provides a recording consumer:
//
//   - NewRecorder() - a consumer that counts Update and Render calls and keeps
//     every remainder it was rendered with
//   - Recorder.FailUpdateOn(k, err), Recorder.FailRenderOn(k, err) - make the
//     k-th call fail with err
//
// # Assertions
//
//   - AssertCounts(t, rec, updates, renders) - checks both call counts
//   - AssertRemainder(t, got, want) - compares fractions with a float32 tolerance
//   - AssertRemaindersInRange(t, rec) - every recorded remainder is in [0, 1)
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - a context that ends before the
//     test deadline, for runner tests that use real time
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    rec := testutil.NewRecorder()
//	    d := gameloop.New(rec)
//	    d.AddAccumulatedTime(20 * time.Millisecond)
//	    require.NoError(t, d.Step())
//	    testutil.AssertCounts(t, rec, 2, 1)
//	}
package testutil
