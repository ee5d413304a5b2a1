package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplInputs(t *testing.T) {
	type testCase struct {
		input       string
		expCommand  replCommand
		description string
	}

	testCases := []testCase{
		{
			input: "get groups",
			expCommand: replCommand{
				args:  []string{"get", "groups"},
				flags: map[string]string{},
			},
			description: "simple command",
		},
		{
			input: "get members  test-group   --full",
			expCommand: replCommand{
				args: []string{"get", "members", "test-group"},
				flags: map[string]string{
					"full": "",
				},
			},
			description: "extra whitespace and bare flag",
		},
		{
			input: "plan test-group --delimiter=: --full=true",
			expCommand: replCommand{
				args: []string{"plan", "test-group"},
				flags: map[string]string{
					"delimiter": ":",
					"full":      "true",
				},
			},
			description: "flags with values",
		},
		{
			input: "--full get topics",
			expCommand: replCommand{
				args:  []string{"--full", "get", "topics"},
				flags: map[string]string{},
			},
			description: "leading flag treated as arg",
		},
	}

	for _, testCase := range testCases {
		assert.Equal(
			t,
			testCase.expCommand,
			parseReplInputs(testCase.input),
			testCase.description,
		)
	}
}

func TestCheckArgs(t *testing.T) {
	command := parseReplInputs("plan test-group --full")

	assert.NoError(t, command.checkArgs(2, 2, map[string]struct{}{"full": {}}))
	assert.NoError(t, command.checkArgs(1, 3, map[string]struct{}{"full": {}}))
	assert.Error(t, command.checkArgs(3, 3, map[string]struct{}{"full": {}}))
	assert.Error(t, command.checkArgs(3, 4, map[string]struct{}{"full": {}}))
	assert.Error(t, command.checkArgs(2, 2, map[string]struct{}{"delimiter": {}}))
	assert.Error(t, command.checkArgs(2, 2, nil))
}

func TestGetBoolValue(t *testing.T) {
	command := parseReplInputs("check test-group --full --raw=true --other=false")

	assert.True(t, command.getBoolValue("full"))
	assert.True(t, command.getBoolValue("raw"))
	assert.False(t, command.getBoolValue("other"))
	assert.False(t, command.getBoolValue("missing"))
}
