package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderOverridesExpectedDate(t *testing.T) {
	var overrides ReorderOverrides
	require.NoError(t, json.Unmarshal([]byte(`{"expectedDate":"2025-06-15"}`), &overrides))
	require.NotNil(t, overrides.ExpectedDate)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), overrides.ExpectedDate.Time)

	overrides = ReorderOverrides{}
	require.NoError(t, json.Unmarshal([]byte(`{"expectedDate":"2025-06-15T09:30:00Z"}`), &overrides))
	require.NotNil(t, overrides.ExpectedDate)
	assert.True(t, overrides.ExpectedDate.Equal(time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)))

	overrides = ReorderOverrides{}
	require.NoError(t, json.Unmarshal([]byte(`{"priority":"High"}`), &overrides))
	assert.Nil(t, overrides.ExpectedDate)

	err := json.Unmarshal([]byte(`{"expectedDate":"15/06/2025"}`), &overrides)
	assert.ErrorContains(t, err, "YYYY-MM-DD or RFC3339")
}
