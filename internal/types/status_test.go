package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{
			name: "uppercase code",
			raw:  "AM",
			want: StatusApprovedByMaintenanceAgency,
		},
		{
			name: "lowercase code",
			raw:  "am",
			want: StatusApprovedByMaintenanceAgency,
		},
		{
			name: "customs authority",
			raw:  "AC",
			want: StatusApprovedByCustomsAuthority,
		},
		{
			name: "removal marker",
			raw:  "xx",
			want: StatusToBeRemoved,
		},
		{
			name: "unrecognized code",
			raw:  "ZZ",
			want: StatusUnknown,
		},
		{
			name: "empty column",
			raw:  "",
			want: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.raw))
		})
	}
}
