package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid late evening", input: "23:59", want: "23:59"},
		{name: "with seconds", input: "09:30:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))

	// Равные значения не считаются ни раньше, ни позже
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("10:00")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), end)

	end, err = start.AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, start, end)

	_, err = TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:00:00")))
		assert.Equal(t, TimeString("08:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("16:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan(42), ErrScanTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("nope").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
