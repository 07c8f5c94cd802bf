package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRef_UnmarshalJSON(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "bare id", input: `"` + id.String() + `"`},
		{name: "object with id", input: `{"id":"` + id.String() + `","name":"ignored"}`},
		{name: "number", input: `42`, wantErr: true},
		{name: "malformed id", input: `"not-a-uuid"`, wantErr: true},
		{name: "object with malformed id", input: `{"id":7}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref EntityRef
			err := json.Unmarshal([]byte(tt.input), &ref)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, ref.ID)
		})
	}
}

func TestDate_RoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-20"`), &d))
	assert.True(t, d.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-10-20"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"2026-10-20T10:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20261020`), &d))
}

func TestOptionalPointers(t *testing.T) {
	var ref *EntityRef
	assert.Nil(t, ref.idPtr())

	var date *Date
	assert.Nil(t, date.timePtr())

	id := uuid.New()
	ref = &EntityRef{ID: id}
	require.NotNil(t, ref.idPtr())
	assert.Equal(t, id, *ref.idPtr())
}
