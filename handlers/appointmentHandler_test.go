package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"OncoCare/scheduling"
)

func TestTransitionErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "rejected transition is a conflict",
			err:  &scheduling.InvalidTransitionError{From: "completed", To: "scheduled"},
			want: 409,
		},
		{
			name: "lost status race is a conflict, not a missing record",
			err:  fmt.Errorf("appointment appt-1: %w", scheduling.ErrStatusConflict),
			want: 409,
		},
		{
			name: "missing record",
			err:  scheduling.ErrNotFound,
			want: 404,
		},
		{
			name: "wrapped missing record",
			err:  fmt.Errorf("lookup failed: %w", scheduling.ErrNotFound),
			want: 404,
		},
		{
			name: "validation failure",
			err:  errors.New("invalid appointment data"),
			want: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transitionErrorStatus(tt.err))
		})
	}
}
