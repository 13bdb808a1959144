package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestProjectStatusValid(t *testing.T) {
	for _, s := range AllProjectStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ProjectStatus("done").Valid())
	assert.False(t, ProjectStatus("").Valid())
}

func TestProjectStatusNames(t *testing.T) {
	assert.Equal(t, "new, in_discussion, in_progress, deployed, cancelled", ProjectStatusNames())
}

func TestStringArrayRoundTrip(t *testing.T) {
	arr := StringArray{"Go", "React", "MySQL"}

	value, err := arr.Value()
	require.NoError(t, err)

	var decoded StringArray
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, arr, decoded)
}

func TestStringArrayScanEmpty(t *testing.T) {
	var arr StringArray
	require.NoError(t, arr.Scan(nil))
	assert.Empty(t, arr)

	require.NoError(t, arr.Scan([]byte("")))
	assert.Empty(t, arr)
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T10:30:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Nil(t, d.TimePtr())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}
