package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentSettings_SetThenGet(t *testing.T) {
	tests := []struct {
		name string
		in   []string
	}{
		{"unset", nil},
		{"empty", []string{}},
		{"single", []string{"summary"}},
		{"duplicates keep order", []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ComponentSettings
			s.SetExcludeFromPdf(tt.in)
			got := s.GetExcludeFromPdf()

			assert.Equal(t, tt.in, got)
			assert.Equal(t, tt.in == nil, got == nil)
		})
	}
}

func TestComponentSettings_NilReceiver(t *testing.T) {
	var s *ComponentSettings
	assert.Nil(t, s.GetExcludeFromPdf())
	assert.False(t, s.Excludes("x"))
	assert.Equal(t, []string{"a"}, s.Filter([]string{"a"}))
}

func TestComponentSettings_JSONKeepsAbsentAndEmptyApart(t *testing.T) {
	t.Run("nil encodes as null", func(t *testing.T) {
		b, err := json.Marshal(ComponentSettings{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"excludeFromPdf":null}`, string(b))
	})

	t.Run("empty encodes as empty array", func(t *testing.T) {
		b, err := json.Marshal(ComponentSettings{ExcludeFromPdf: []string{}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"excludeFromPdf":[]}`, string(b))

		var back ComponentSettings
		require.NoError(t, json.Unmarshal(b, &back))
		assert.NotNil(t, back.ExcludeFromPdf)
		assert.Empty(t, back.ExcludeFromPdf)
	})

	t.Run("absent field decodes as nil", func(t *testing.T) {
		var s ComponentSettings
		require.NoError(t, json.Unmarshal([]byte(`{}`), &s))
		assert.Nil(t, s.ExcludeFromPdf)
	})
}

func TestComponentSettings_Excludes(t *testing.T) {
	s := ComponentSettings{ExcludeFromPdf: []string{"summary", "Attachments"}}

	assert.True(t, s.Excludes("summary"))
	assert.False(t, s.Excludes("attachments"))
	assert.False(t, s.Excludes(""))
}

func TestComponentSettings_Filter(t *testing.T) {
	s := ComponentSettings{ExcludeFromPdf: []string{"b", "d"}}

	assert.Equal(t, []string{"a", "c", "e"}, s.Filter([]string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, []string{}, s.Filter([]string{"b", "d", "b"}))
	assert.Equal(t, []string{}, s.Filter(nil))

	none := ComponentSettings{}
	in := []string{"x", "y"}
	assert.Equal(t, in, none.Filter(in))
}
