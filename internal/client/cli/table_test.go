package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTable_Empty(t *testing.T) {
	assert.Equal(t, "No files found", formatTable(nil))
}

func TestFormatTable(t *testing.T) {
	updated := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)
	out := formatTable([]models.FileRecord{
		{ID: "1", DisplayName: "a.txt", SizeBytes: 1536, MimeType: "text/plain", UpdatedAt: updated, ShareURL: "https://s/1"},
		{ID: "22", DisplayName: "b.bin", SizeBytes: 0},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Equal(t, []string{"1", "a.txt", "1.50", "KB", "text/plain", "2024-03-09", "https://s/1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"22", "b.bin", "0.00", "KB", "-", "N/A", "-"}, strings.Fields(lines[2]))
}

func TestFormatDate_FallsBackToCreated(t *testing.T) {
	created := time.Date(2023, 1, 2, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2023-01-02", formatDate(models.FileRecord{CreatedAt: created}))
}
