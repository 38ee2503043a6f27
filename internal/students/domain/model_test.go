package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusActive))
	assert.True(t, ValidStatus(StatusInactive))
	assert.True(t, ValidStatus(StatusGraduated))
	assert.False(t, ValidStatus("expelled"))
	assert.False(t, ValidStatus(""))
}

func TestNewStudentID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewStudentID()
		assert.True(t, strings.HasPrefix(id, "STU-"))
		assert.Len(t, id, 17)
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}
