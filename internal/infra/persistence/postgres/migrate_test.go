package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_views.sql": {Data: []byte("SELECT 1;")},
		"migrations/0001_init.sql":  {Data: []byte("SELECT 1;")},
		"migrations/README.md":      {Data: []byte("docs")},
		"migrations/sub/0003.sql":   {Data: []byte("SELECT 1;")},
	}

	names, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_views.sql"}, names)
}

func TestMigrationFiles_EmbeddedSchema(t *testing.T) {
	names, err := migrationFiles(migrationFS)
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
}

func TestMigrationFiles_MissingDirectory(t *testing.T) {
	_, err := migrationFiles(fstest.MapFS{})
	assert.Error(t, err)
}
