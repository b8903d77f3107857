package ioprio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNamesRoundTrip(t *testing.T) {
	for code, name := range []string{"none", "realtime", "best-effort", "idle"} {
		class, found := ClassByName(name)
		assert.True(t, found, name)
		assert.Equal(t, Class(code), class)
		assert.Equal(t, name, class.String())
	}
}

func TestClassByNameIsCaseInsensitive(t *testing.T) {
	class, found := ClassByName("Best-Effort")
	assert.True(t, found)
	assert.Equal(t, ClassBestEffort, class)

	class, found = ClassByName("IDLE")
	assert.True(t, found)
	assert.Equal(t, ClassIdle, class)

	_, found = ClassByName("besteffort")
	assert.False(t, found)
}

func TestUnknownClass(t *testing.T) {
	assert.False(t, Class(9).Known())
	assert.Equal(t, "unknown", Class(9).String())
	assert.Equal(t, "unknown", Class(-1).String())
}

func TestEncodeDecode(t *testing.T) {
	assert.Equal(t, 2<<13|4, Value{Class: ClassBestEffort, Data: 4}.Encode())
	assert.Equal(t, 3<<13|7, Value{Class: ClassIdle, Data: 7}.Encode())
	assert.Equal(t, 0, Value{Class: ClassNone, Data: 0}.Encode())
	assert.Equal(t, 9<<13|1, Value{Class: 9, Data: 1}.Encode())

	assert.Equal(t, Value{Class: ClassRealtime, Data: 3}, Decode(1<<13|3))
	assert.Equal(t, Value{Class: 9, Data: 1}, Decode(9<<13|1))
}

func TestEncodeMasksData(t *testing.T) {
	assert.Equal(t, ClassBestEffort, Decode(Value{Class: ClassBestEffort, Data: 8192}.Encode()).Class)
	assert.Equal(t, ClassRealtime, Decode(Value{Class: ClassRealtime, Data: -1}.Encode()).Class)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "best-effort: prio 4", Value{Class: ClassBestEffort, Data: 4}.String())
	assert.Equal(t, "none: prio 0", Value{Class: ClassNone}.String())
	assert.Equal(t, "realtime: prio 0", Value{Class: ClassRealtime}.String())
	assert.Equal(t, "idle", Value{Class: ClassIdle, Data: 7}.String())
	assert.Equal(t, "unknown: prio 2", Value{Class: 5, Data: 2}.String())
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "pid 0", Self().String())
	assert.Equal(t, "pgid 42", Target{Who: WhoProcessGroup, ID: 42}.String())
	assert.Equal(t, "uid 1000", Target{Who: WhoUser, ID: 1000}.String())
}
