package handler

import (
	"strconv"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNear(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *orb.Point
		wantErr error
	}{
		{name: "empty", raw: "  ", want: nil},
		{name: "lat lng", raw: "-23.4, -45.6", want: &orb.Point{-45.6, -23.4}},
		{name: "missing comma", raw: "-23.4", wantErr: strconv.ErrSyntax},
		{name: "latitude out of range", raw: "95,10", wantErr: strconv.ErrRange},
		{name: "longitude out of range", raw: "10,200", wantErr: strconv.ErrRange},
		{name: "infinite", raw: "10,Inf", wantErr: strconv.ErrRange},
		{name: "nan pair", raw: "NaN,NaN", wantErr: strconv.ErrSyntax},
		{name: "nan latitude", raw: "nan,10", wantErr: strconv.ErrSyntax},
		{name: "nan longitude", raw: "10,NAN", wantErr: strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNear(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
