package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTaxField(t *testing.T) {
	tests := []struct {
		name       string
		applicable bool
		present    bool
		wantErr    bool
	}{
		{name: "applicable and present", applicable: true, present: true},
		{name: "not applicable and absent", applicable: false, present: false},
		{name: "applicable but absent", applicable: true, present: false, wantErr: true},
		{name: "not applicable but present", applicable: false, present: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTaxField(tt.applicable, tt.present, "tax")
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "tax", verr.Field)
		})
	}
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	type payload struct {
		Name  string `json:"name" validate:"required"`
		Image string `json:"image" validate:"required,url"`
	}

	var verr *ValidationError

	err := Struct(&payload{Image: "https://x/y.jpg"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	err = Struct(&payload{Name: "n", Image: "not a url"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Field)

	require.NoError(t, Struct(&payload{Name: "n", Image: "https://x/y.jpg"}))
}
