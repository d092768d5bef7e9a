package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
)

const dateLayout = "2006-01-02"

// formatTable renders records the way the dashboard lists them: name, size
// in KB, type, last update and share link.
func formatTable(records []models.FileRecord) string {
	if len(records) == 0 {
		return "No files found"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tTYPE\tUPDATED\tSHARE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.DisplayName, formatSize(r.SizeBytes), orDash(r.MimeType), formatDate(r), orDash(r.ShareURL))
	}
	_ = tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func formatSize(n int64) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

func formatDate(r models.FileRecord) string {
	t := r.UpdatedAt
	if t.IsZero() {
		t = r.CreatedAt
	}
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(dateLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
