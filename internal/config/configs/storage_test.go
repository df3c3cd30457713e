package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageValidate(t *testing.T) {
	assert.NoError(t, Storage{Driver: "postgres"}.Validate())
	assert.NoError(t, Storage{Driver: "memory"}.Validate())
	assert.Error(t, Storage{Driver: "sqlite"}.Validate())
	assert.Error(t, Storage{Driver: ""}.Validate())
}

func TestClockValidate(t *testing.T) {
	assert.NoError(t, Clock{Mode: "system"}.Validate())
	assert.NoError(t, Clock{Mode: "offset"}.Validate())
	assert.Error(t, Clock{Mode: "manual"}.Validate())
}
