package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]EntryStatus{
		"waiting":        StatusWaiting,
		"Aguardando":     StatusWaiting,
		"proximo":        StatusCalled,
		"próximo":        StatusCalled,
		"atendendo":      StatusInService,
		"em_atendimento": StatusInService,
		"em-atendimento": StatusInService,
		" in_service ":   StatusInService,
		"concluído":      StatusDone,
		"saiu":           StatusLeft,
		"no show":        StatusNoShow,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseStatus("teleported")
	assert.Error(t, err)
}

func TestStatusClassification(t *testing.T) {
	for _, s := range []EntryStatus{StatusDone, StatusLeft, StatusNoShow} {
		assert.True(t, s.IsTerminal())
		assert.False(t, s.IsActive())
	}
	for _, s := range []EntryStatus{StatusWaiting, StatusCalled, StatusInService} {
		assert.False(t, s.IsTerminal())
		assert.True(t, s.IsActive())
	}
	assert.False(t, EntryStatus("bogus").Valid())
}

func TestQueueEntryClone(t *testing.T) {
	barber := "b1"
	e := &QueueEntry{ID: "e1", RequestedBarberID: &barber}
	c := e.Clone()
	*c.RequestedBarberID = "b2"
	assert.Equal(t, "b1", *e.RequestedBarberID)
	assert.False(t, e.IsGeneral())
	assert.True(t, (&QueueEntry{}).IsGeneral())
}
