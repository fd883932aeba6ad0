package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"quoted string", `"500"`, "500", false},
		{"bare number", `500`, "500", false},
		{"decimal number", `2.5`, "2.5", false},
		{"empty string", `""`, "", false},
		{"null", `null`, "", false},
		{"boolean", `true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"bare number", `5`, 5, false},
		{"decimal", `12.5`, 12.5, false},
		{"numeric string", `"12.5"`, 12.5, false},
		{"integer string", `"3"`, 3, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"non-numeric string", `"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Float64())
		})
	}
}

func TestFlexFloat_Display(t *testing.T) {
	assert.Equal(t, "2", FlexFloat(2).Display())
	assert.Equal(t, "2.5", FlexFloat(2.5).Display())
	assert.Equal(t, "0", FlexFloat(0).Display())
}
