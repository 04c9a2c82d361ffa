package dq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSetThenReselect(t *testing.T) {
	loadPage(t)

	New("#box-1").SetData("x", 123)

	v, ok := New("#box-1").Data("x")
	require.True(t, ok)
	assert.Equal(t, 123, v)
}

func TestDataGetModeRequiresExactlyOneMember(t *testing.T) {
	loadPage(t)

	_, ok := New(".box").Data("x")
	assert.False(t, ok)
	_, ok = New(".missing").DataRecord()
	assert.False(t, ok)
}

func TestDataRecordIsLazilyCreated(t *testing.T) {
	loadPage(t)
	box := New("#box-2")

	rec, ok := box.DataRecord()
	require.True(t, ok)
	assert.Empty(t, rec)

	// Same record on re-wrap, not a fresh one.
	rec["y"] = "z"
	again, ok := New(box.Get(0)).DataRecord()
	require.True(t, ok)
	assert.Equal(t, "z", again["y"])
}

func TestSetDataBroadcastsAcrossMembers(t *testing.T) {
	loadPage(t)

	New(".box").SetData("shared", true)
	for _, sel := range []string{"#box-1", "#box-2"} {
		v, ok := New(sel).Data(sel) // absent key
		assert.False(t, ok)
		assert.Nil(t, v)
		v, ok = New(sel).Data("shared")
		require.True(t, ok)
		assert.Equal(t, true, v)
	}
}

func TestRemovePurgesDataRecord(t *testing.T) {
	loadPage(t)

	box := New("#box-1")
	el := box.Get(0)
	box.SetData("x", 123)
	box.Remove()

	// The element is detached and non-document, and its record is gone;
	// a fresh get lazily creates an empty record.
	_, ok := New(el).Data("x")
	assert.False(t, ok)
}
