package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/models"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "accepted", input: "ACCEPTED", want: StatusAccepted},
		{name: "declined", input: "DECLINED", want: StatusDeclined},
		{name: "pending is not a decision", input: "PENDING", wantErr: true},
		{name: "completed is reserved", input: "COMPLETED", wantErr: true},
		{name: "unknown value", input: "REFUNDED", wantErr: true},
		{name: "lowercase is rejected", input: "accepted", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecision(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanReview(t *testing.T) {
	assert.NoError(t, CanReview(StatusCompleted))

	for _, s := range []Status{StatusPending, StatusAccepted, StatusDeclined} {
		err := CanReview(s)
		assert.True(t, httperr.IsKind(err, httperr.KindInvalidState), "status %s", s)
	}
}

func TestApplyDecision(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	ApplyDecision(b, StatusAccepted)
	assert.Equal(t, "ACCEPTED", b.Status)

	// overwrites are unconditional within the decision set
	ApplyDecision(b, StatusDeclined)
	assert.Equal(t, "DECLINED", b.Status)
}
