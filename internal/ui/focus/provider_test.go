package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvider_Focus(t *testing.T) {
	p := NewProvider()
	assert.False(t, p.IsEditing())
	assert.Nil(t, p.GetFocusedInput())

	p.SetFocusedInput(Field("console-prompt"))
	assert.True(t, p.IsEditing())
	assert.Equal(t, "console-prompt", p.GetFocusedInput().InputID())

	p.SetFocusedInput(nil)
	assert.False(t, p.IsEditing())
}
