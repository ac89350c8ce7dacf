package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(id string, seq int64, status models.EntryStatus, barber string) *models.QueueEntry {
	e := &models.QueueEntry{
		ID:           id,
		BarbershopID: "shop",
		Status:       status,
		ArrivalTime:  t0.Add(time.Duration(seq) * time.Minute),
		Seq:          seq,
	}
	if barber != "" {
		e.RequestedBarberID = &barber
	}
	return e
}

func ids(es []*models.QueueEntry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func TestEligibleFor(t *testing.T) {
	es := []*models.QueueEntry{
		entry("g1", 1, models.StatusWaiting, ""),
		entry("x1", 2, models.StatusWaiting, "x"),
		entry("y1", 3, models.StatusWaiting, "y"),
	}
	assert.Equal(t, []string{"g1", "x1"}, ids(EligibleFor("x", es)))
	assert.Equal(t, []string{"g1", "y1"}, ids(EligibleFor("y", es)))
}

func TestOrderedByArrivalTieBreak(t *testing.T) {
	a := entry("a", 2, models.StatusWaiting, "")
	b := entry("b", 1, models.StatusWaiting, "")
	a.ArrivalTime = t0
	b.ArrivalTime = t0

	in := []*models.QueueEntry{a, b}
	assert.Equal(t, []string{"b", "a"}, ids(OrderedByArrival(in)))
	assert.Equal(t, "a", in[0].ID, "input slice is left untouched")
}

func TestNextForSkipsOtherBarbersClients(t *testing.T) {
	es := []*models.QueueEntry{
		entry("x1", 1, models.StatusWaiting, "x"),
		entry("c1", 2, models.StatusCalled, ""),
		entry("g1", 3, models.StatusWaiting, ""),
	}
	assert.Equal(t, "g1", NextFor("y", es).ID)
	assert.Equal(t, "x1", NextFor("x", es).ID)
	assert.Nil(t, NextFor("y", es[:2]))
}

func TestByTimeView(t *testing.T) {
	es := []*models.QueueEntry{
		entry("g2", 3, models.StatusWaiting, ""),
		entry("x1", 1, models.StatusWaiting, "x"),
		entry("g1", 2, models.StatusWaiting, ""),
	}

	view := ByTimeView("y", es, 10)
	require.Len(t, view, 3)
	assert.Equal(t, "x1", view[0].ID)
	assert.False(t, view[0].Servable)
	assert.True(t, view[1].Servable)
	assert.True(t, view[2].Servable)
	assert.Equal(t, []int{0, 10, 20}, []int{view[0].EstimatedMinutes, view[1].EstimatedMinutes, view[2].EstimatedMinutes})

	for _, it := range ByTimeView("", es, 10) {
		assert.False(t, it.Servable)
	}
}

func TestEstimateMinutes(t *testing.T) {
	es := []*models.QueueEntry{
		entry("g1", 1, models.StatusWaiting, ""),
		entry("x1", 2, models.StatusWaiting, "x"),
		entry("y1", 3, models.StatusWaiting, "y"),
		entry("g2", 4, models.StatusWaiting, ""),
		entry("x2", 5, models.StatusWaiting, "x"),
		entry("c1", 0, models.StatusCalled, ""),
	}
	byID := map[string]*models.QueueEntry{}
	for _, e := range es {
		byID[e.ID] = e
	}

	assert.Equal(t, 0, EstimateMinutes(byID["g1"], es, 15))
	assert.Equal(t, 45, EstimateMinutes(byID["g2"], es, 15))
	// g1, x1, g2 ahead; y1 is another barber's client.
	assert.Equal(t, 45, EstimateMinutes(byID["x2"], es, 15))
	assert.Equal(t, 15, EstimateMinutes(byID["y1"], es, 15))
	assert.Equal(t, 0, EstimateMinutes(byID["c1"], es, 15))
}

func TestStateMachineTransitions(t *testing.T) {
	legal := []struct {
		from models.EntryStatus
		ev   Event
		to   models.EntryStatus
	}{
		{models.StatusWaiting, EventCall, models.StatusCalled},
		{models.StatusWaiting, EventLeave, models.StatusLeft},
		{models.StatusCalled, EventStart, models.StatusInService},
		{models.StatusCalled, EventNoShow, models.StatusNoShow},
		{models.StatusCalled, EventLeave, models.StatusLeft},
		{models.StatusInService, EventFinish, models.StatusDone},
	}
	for _, tc := range legal {
		to, err := Next(tc.from, tc.ev)
		require.NoError(t, err)
		assert.Equal(t, tc.to, to)
	}

	illegal := []struct {
		from models.EntryStatus
		ev   Event
	}{
		{models.StatusWaiting, EventStart},
		{models.StatusWaiting, EventFinish},
		{models.StatusCalled, EventCall},
		{models.StatusInService, EventLeave},
		{models.StatusInService, EventNoShow},
		{models.StatusDone, EventCall},
		{models.StatusLeft, EventLeave},
		{models.StatusNoShow, EventStart},
	}
	for _, tc := range illegal {
		_, err := Next(tc.from, tc.ev)
		assert.ErrorIs(t, err, qerrors.ErrInvalidState, "%s on %s", tc.ev, tc.from)
	}
}

func TestApplySideEffects(t *testing.T) {
	e := entry("e", 1, models.StatusWaiting, "")
	e.Position = 1
	at := t0.Add(time.Hour)

	require.NoError(t, Apply(e, EventCall, "x", at))
	assert.True(t, e.HeldBy("x"))
	assert.Equal(t, at, *e.CalledAt)
	assert.Equal(t, 1, e.Position)

	assert.ErrorIs(t, Apply(e, EventStart, "y", at), qerrors.ErrForbidden)
	assert.Equal(t, models.StatusCalled, e.Status)

	require.NoError(t, Apply(e, EventStart, "x", at))
	assert.Equal(t, models.StatusInService, e.Status)
	assert.Equal(t, 0, e.Position)

	assert.ErrorIs(t, Apply(e, EventFinish, "y", at), qerrors.ErrForbidden)
	require.NoError(t, Apply(e, EventFinish, "x", at.Add(20*time.Minute)))
	assert.Equal(t, models.StatusDone, e.Status)
	assert.NotNil(t, e.FinishedAt)

	specific := entry("s", 2, models.StatusWaiting, "x")
	assert.ErrorIs(t, Apply(specific, EventCall, "y", at), qerrors.ErrForbidden)
}

func TestRenumber(t *testing.T) {
	es := []*models.QueueEntry{
		entry("a", 1, models.StatusInService, ""),
		entry("b", 2, models.StatusCalled, ""),
		entry("c", 3, models.StatusWaiting, ""),
		entry("d", 4, models.StatusWaiting, "x"),
	}
	es[0].Position = 1
	es[1].Position = 2
	es[2].Position = 3

	changed := Renumber(es)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}, changed)

	assert.Empty(t, Renumber(es))
}

func TestSnapshot(t *testing.T) {
	x := "x"
	es := []*models.QueueEntry{
		entry("b", 2, models.StatusWaiting, ""),
		entry("a", 1, models.StatusCalled, ""),
	}
	es[1].ServingBarberID = &x
	Renumber(es)

	snap := NewSnapshot(models.ShopConfig{BarbershopID: "shop", AverageServiceMinutes: 15, MaxQueueLength: 5}, es, 3, t0)
	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, []string{"a", "b"}, ids(snap.Entries()))

	held, ok := snap.HeldBy("x")
	require.True(t, ok)
	assert.Equal(t, "a", held.ID)
	_, ok = snap.HeldBy("y")
	assert.False(t, ok)

	got, ok := snap.Entry("b")
	require.True(t, ok)
	got.Position = 99
	again, _ := snap.Entry("b")
	assert.Equal(t, 2, again.Position)

	assert.Equal(t, 0, snap.Estimate("b"))
	info := snap.Info()
	assert.Equal(t, 1, info.Waiting)
	assert.Equal(t, 1, info.Called)
	assert.Equal(t, 5, info.MaxQueueLength)

	view := snap.View("y")
	require.Len(t, view, 2)
	assert.False(t, view[0].Servable)
	assert.True(t, view[1].Servable)
}
