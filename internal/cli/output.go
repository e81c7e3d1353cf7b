package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/spf13/cobra"
)

// render печатает v в JSON или текстом через text
func (o *RootOptions) render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func printQueue(w io.Writer, queue []models.QueuedAction) {
	if len(queue) == 0 {
		fmt.Fprintln(w, "queue is empty")
		return
	}
	for _, a := range queue {
		line := fmt.Sprintf("%s\t%s\ttarget=%d\tretries=%d", a.ID, a.Kind, a.TargetID(), a.Retries)
		if a.Summary != "" {
			line += "\t" + a.Summary
		}
		fmt.Fprintln(w, line)
	}
}

func printDrainReport(w io.Writer, r models.DrainReport) {
	if !r.Started {
		fmt.Fprintf(w, "drain skipped: %s\n", r.Reason)
		return
	}
	fmt.Fprintf(w, "synced %d, remaining %d\n", r.Synced, r.Remaining)
	if r.FailedID != "" {
		fmt.Fprintf(w, "stopped at %s: [%s] %s\n", r.FailedID, r.Code, r.Error)
	}
}

func printStatus(w io.Writer, s models.SyncStatus) {
	fmt.Fprintf(w, "online: %t\nprocessing: %t\npending: %d\n", s.Online, s.Processing, s.Pending)
	if s.LastDrain != nil {
		fmt.Fprintf(w, "last drain: %s\n", s.LastDrain.Format("2006-01-02 15:04:05"))
	}
	if s.LastError != "" {
		fmt.Fprintf(w, "last error: %s\n", s.LastError)
	}
}

func printRefreshReport(w io.Writer, r models.RefreshReport) {
	if r.Skipped {
		fmt.Fprintln(w, "refresh skipped: offline")
		return
	}
	fmt.Fprintf(w, "updated: %s\n", joinOrDash(r.Updated))
	fmt.Fprintf(w, "failed: %s\n", joinOrDash(r.Failed))
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
