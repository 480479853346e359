package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0001_create_questions.up.sql",
		"0002_create_choices.up.sql",
	}, names)
}

func TestMigrationFile(t *testing.T) {
	name, content, err := MigrationFile("create_choices.down")
	require.NoError(t, err)
	assert.Equal(t, "0002_create_choices.down.sql", name)
	assert.Contains(t, string(content), "DROP TABLE IF EXISTS choices")

	_, _, err = MigrationFile("does_not_exist")
	assert.Error(t, err)
}
