// internal/render/render.go

// Package render draws fetched snapshots as terminal cards and tables. It
// owns the empty states: an empty filtered result renders a distinct "no
// matches" line, never a blank block.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"home4paws-cli/internal/dashboard"
	"home4paws-cli/internal/models"
)

// Empty renders the empty state. filtered selects the "no matches" variant
// used when at least one filter is active.
func Empty(w io.Writer, resource string, filtered bool) {
	if filtered {
		fmt.Fprintf(w, "No %s match the current filters.\n", resource)
		return
	}
	fmt.Fprintf(w, "No %s yet.\n", resource)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Dogs renders the catalog as a table.
func Dogs(w io.Writer, dogs []models.Dog, filtered bool) {
	if len(dogs) == 0 {
		Empty(w, "dogs", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tBREED\tFLOW\tPRICE\tSTATUS")
	for _, d := range dogs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Name, d.Breed, flowLabel(d), priceLabel(d), d.Status)
	}
	tw.Flush()
}

func flowLabel(d models.Dog) string {
	if d.IsStray {
		return "adoption"
	}
	return "purchase"
}

func priceLabel(d models.Dog) string {
	if d.IsStray {
		return "free"
	}
	return fmt.Sprintf("Rs. %.0f", d.Price)
}

// DogDetail renders the single-dog view with adoption/purchase framing. The
// primary action label carries the status when the dog is unavailable.
func DogDetail(w io.Writer, dog *models.Dog) {
	fmt.Fprintf(w, "%s (#%d)\n", dog.Name, dog.ID)
	fmt.Fprintf(w, "  Breed:  %s\n", dog.Breed)
	if dog.Age > 0 {
		fmt.Fprintf(w, "  Age:    %d\n", dog.Age)
	}
	fmt.Fprintf(w, "  Status: %s\n", dog.Status)
	if dog.Description != "" {
		fmt.Fprintf(w, "  About:  %s\n", dog.Description)
	}
	if dog.IsStray {
		fmt.Fprintln(w, "  Adoption fee: free (standard adoption procedures apply)")
	} else {
		fmt.Fprintf(w, "  Purchase price: Rs. %.0f (includes documentation and health guarantee)\n", dog.Price)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Action: %s\n", ActionLabel(dog))
	if !dog.Available() {
		fmt.Fprintf(w, "  This dog is currently %s. Please check back later or browse other available dogs.\n",
			strings.ToLower(string(dog.Status)))
	}
}

// ActionLabel is the primary action label: the flow verb when available,
// otherwise the current status standing in for the disabled control.
func ActionLabel(dog *models.Dog) string {
	if !dog.Available() {
		return string(dog.Status)
	}
	if dog.IsStray {
		return "Start Adoption Process"
	}
	return "Purchase Now"
}

// Reports renders a report list. stale marks a cached snapshot served while
// the backend was unreachable.
func Reports(w io.Writer, reports []models.Report, filtered, stale bool) {
	if stale {
		fmt.Fprintln(w, "(showing cached copy; could not reach the server)")
	}
	if len(reports) == 0 {
		Empty(w, "reports", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tLOCATION\tPHOTOS\tSTATUS")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Name, r.Phone, r.Location, len(r.PhotoURLs), r.Status)
	}
	tw.Flush()
}

// Surrenders renders a surrender request list.
func Surrenders(w io.Writer, requests []models.SurrenderRequest, filtered, stale bool) {
	if stale {
		fmt.Fprintln(w, "(showing cached copy; could not reach the server)")
	}
	if len(requests) == 0 {
		Empty(w, "surrender requests", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tOWNER\tDOG\tBREED\tURGENT\tSTATUS")
	for _, r := range requests {
		urgent := ""
		if r.IsUrgent {
			urgent = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.SurrenderID, r.OwnerName, r.DogName, r.DogBreed, urgent, r.RequestStatus)
	}
	tw.Flush()
}

// Applications renders an application list.
func Applications(w io.Writer, apps []models.Application, filtered bool) {
	if len(apps) == 0 {
		Empty(w, "applications", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDOG\tTYPE\tAPPLICANT\tSTATUS\tSUBMITTED")
	for _, a := range apps {
		dog := a.DogName
		if dog == "" {
			dog = fmt.Sprintf("#%d", a.DogID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, dog, a.Type, a.ApplicantName, a.Status, a.SubmittedAt)
	}
	tw.Flush()
}

// Messages renders a contact message list.
func Messages(w io.Writer, msgs []models.ContactMessage, filtered bool) {
	if len(msgs) == 0 {
		Empty(w, "messages", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFROM\tEMAIL\tSTATUS\tMESSAGE")
	for _, m := range msgs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Email, m.Status, truncate(m.Message, 48))
	}
	tw.Flush()
}

// Users renders the admin user table.
func Users(w io.Writer, users []models.User, filtered bool) {
	if len(users) == 0 {
		Empty(w, "users", filtered)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLES\tENABLED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n",
			u.ID, u.Username, u.Email, strings.Join(u.Roles, ","), u.Enabled)
	}
	tw.Flush()
}

// Dashboard renders the aggregated counts. Sections that failed show their
// error inline with zero counts.
func Dashboard(w io.Writer, stats *dashboard.Stats) {
	section := func(name string, s dashboard.ResourceStats) {
		if s.Err != "" {
			fmt.Fprintf(w, "%-22s unavailable (%s)\n", name, s.Err)
			return
		}
		fmt.Fprintf(w, "%-22s %d%s\n", name, s.Total, statusBreakdown(s.ByStatus))
	}
	section("Users", stats.Users)
	section("Dogs", stats.Dogs)
	section("Applications", stats.Applications)
	section("Reports", stats.Reports)
	section("Surrender requests", stats.Surrenders)
	section("Contact messages", stats.Messages)
}

func statusBreakdown(byStatus map[string]int) string {
	if len(byStatus) == 0 {
		return ""
	}
	keys := make([]string, 0, len(byStatus))
	for k := range byStatus {
		keys = append(keys, k)
	}
	// Stable order keeps watch-mode output diffable.
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", strings.ToLower(k), byStatus[k]))
	}
	return "  (" + strings.Join(parts, ", ") + ")"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
