// internal/dashboard/dashboard.go

// Package dashboard aggregates per-resource counts for the admin overview.
// There is no aggregation endpoint: one list fetch per resource runs in
// parallel and the counts are derived client-side. Each fetch fails
// independently; its section reports zero counts and an error string instead
// of failing the whole dashboard.
package dashboard

import (
	"context"
	"sync"

	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/resources"
)

// ResourceStats is one resource's section of the dashboard.
type ResourceStats struct {
	Total    int
	ByStatus map[string]int
	Err      string
}

// Stats is the full dashboard snapshot.
type Stats struct {
	Users        ResourceStats
	Dogs         ResourceStats
	Applications ResourceStats
	Reports      ResourceStats
	Surrenders   ResourceStats
	Messages     ResourceStats
}

// Collector fetches dashboard snapshots.
type Collector struct {
	admin  *resources.AdminService
	logger logger.Logger
}

func NewCollector(admin *resources.AdminService, log logger.Logger) *Collector {
	return &Collector{admin: admin, logger: log}
}

// Collect runs all six fetches concurrently and waits for every one to
// settle. Completion order is undefined; each goroutine writes only its own
// section.
func (c *Collector) Collect(ctx context.Context) *Stats {
	stats := &Stats{}
	var wg sync.WaitGroup

	run := func(section *ResourceStats, fetch func() (int, map[string]int, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			total, byStatus, err := fetch()
			if err != nil {
				c.logger.Warn("dashboard fetch failed", map[string]interface{}{"error": err.Error()})
				*section = ResourceStats{ByStatus: map[string]int{}, Err: err.Error()}
				return
			}
			*section = ResourceStats{Total: total, ByStatus: byStatus}
		}()
	}

	run(&stats.Users, func() (int, map[string]int, error) {
		users, err := c.admin.ListUsers(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, u := range users {
			if u.Enabled {
				byStatus["ENABLED"]++
			} else {
				byStatus["DISABLED"]++
			}
		}
		return len(users), byStatus, nil
	})

	run(&stats.Dogs, func() (int, map[string]int, error) {
		dogs, err := c.admin.ListDogs(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, d := range dogs {
			byStatus[string(d.Status)]++
		}
		return len(dogs), byStatus, nil
	})

	run(&stats.Applications, func() (int, map[string]int, error) {
		apps, err := c.admin.ListApplications(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, a := range apps {
			byStatus[string(a.Status)]++
		}
		return len(apps), byStatus, nil
	})

	run(&stats.Reports, func() (int, map[string]int, error) {
		reports, err := c.admin.ListReports(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, r := range reports {
			byStatus[string(r.Status)]++
		}
		return len(reports), byStatus, nil
	})

	run(&stats.Surrenders, func() (int, map[string]int, error) {
		requests, err := c.admin.ListSurrenders(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, r := range requests {
			byStatus[string(r.RequestStatus)]++
		}
		return len(requests), byStatus, nil
	})

	run(&stats.Messages, func() (int, map[string]int, error) {
		msgs, err := c.admin.ListMessages(ctx)
		if err != nil {
			return 0, nil, err
		}
		byStatus := map[string]int{}
		for _, m := range msgs {
			byStatus[string(m.Status)]++
		}
		return len(msgs), byStatus, nil
	})

	wg.Wait()
	return stats
}
