package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, "{}", extractJSON(""))
	assert.Equal(t, `{"emotion": "joy"}`, extractJSON(`{"emotion": "joy"}`))
	assert.Equal(t, `{"emotion": "joy"}`, extractJSON("Here is the analysis:\n```json\n{\"emotion\": \"joy\"}\n```"))
	assert.Equal(t, "no braces here", extractJSON("no braces here"))
}
