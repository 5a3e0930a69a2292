package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAuditIDGeneration tests audit ID format and uniqueness
func TestAuditIDGeneration(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateAuditID()

		assert.Contains(t, id, "AUDIT-")
		assert.False(t, ids[id], "ID should be unique")
		ids[id] = true
	}

	assert.Equal(t, 100, len(ids), "Should have 100 unique IDs")
}

func TestGenerateID_IsValidUUID(t *testing.T) {
	id := GenerateID()
	assert.True(t, IsValidUUID(id))
}

func TestIsValidUUID_RejectsGarbage(t *testing.T) {
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
