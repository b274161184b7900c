package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/prompt"
)

func TestScriptedPrompter_AnswersInOrder(t *testing.T) {
	ctx := context.Background()
	p := NewScriptedPrompter().Type("Finance").Pick("Sales")

	name, err := p.Input(ctx, "Enter department name:")
	require.NoError(t, err)
	assert.Equal(t, "Finance", name)

	idx, err := p.Select(ctx, "Select department:", []string{"Engineering", "Sales"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	assert.Equal(t, []string{"Enter department name:", "Select department:"}, p.Titles())
	assert.Nil(t, p.Asked[0].Labels)
	assert.Equal(t, []string{"Engineering", "Sales"}, p.Asked[1].Labels)
	assert.Zero(t, p.Remaining())
}

func TestScriptedPrompter_ExhaustedReturnsEOF(t *testing.T) {
	p := NewScriptedPrompter()

	_, err := p.Select(context.Background(), "What would you like to do?", []string{"Exit"})
	assert.ErrorIs(t, err, io.EOF)

	_, err = p.Input(context.Background(), "Enter first name:")
	assert.ErrorIs(t, err, io.EOF)
}

func TestScriptedPrompter_Fail(t *testing.T) {
	p := NewScriptedPrompter().Fail(prompt.ErrAborted)

	_, err := p.Input(context.Background(), "Enter salary:")
	assert.ErrorIs(t, err, prompt.ErrAborted)
}

func TestScriptedPrompter_UnknownLabel(t *testing.T) {
	p := NewScriptedPrompter().Pick("Marketing")

	_, err := p.Select(context.Background(), "Select department:", []string{"Engineering"})
	assert.Error(t, err)
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	assert.NoError(t, db.Ping(context.Background()))
}
