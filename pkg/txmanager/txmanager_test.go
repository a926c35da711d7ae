package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serializationErr := &pq.Error{Code: "40001"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "bare driver error", err: serializationErr, want: true},
		{
			name: "wrapped commit error keeps the code visible",
			err:  fmt.Errorf("%w: %w", ErrCommitTx, serializationErr),
			want: true,
		},
		{
			name: "in-transaction query error wrapped twice",
			err:  fmt.Errorf("storage: failed: %w", fmt.Errorf("execute query: %w", serializationErr)),
			want: true,
		},
		{
			name: "flattened message loses the driver error",
			err:  fmt.Errorf("%w: %v", ErrCommitTx, serializationErr),
			want: false,
		},
		{name: "unique violation is not retried", err: &pq.Error{Code: "23505"}, want: false},
		{name: "non-driver error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
