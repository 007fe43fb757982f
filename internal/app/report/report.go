// Package report prints the current board as a table, for a quick look at
// the pipeline from a shell without the dashboard.
package report

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"catering-system/internal/board"
	"catering-system/internal/common/config"
	"catering-system/internal/common/logger"
	"catering-system/internal/connections/database"
	"catering-system/internal/data"
	"catering-system/internal/domain"
	"catering-system/internal/pipeline"
	"catering-system/internal/store"
)

type Config struct {
	Demo bool
	App  config.App
}

func Run(ctx context.Context, cfg Config) error {
	lg := logger.New("board-report")

	var st store.RecordStore
	if cfg.Demo {
		st = store.NewMemory(data.DemoRecords(time.Now().UTC())...)
	} else {
		pool, err := database.Connect(ctx, cfg.App.Database)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		defer pool.Close()
		st = store.NewPostgres(pool)
	}

	records, err := st.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	model, rerouted := board.Partition(records)
	for _, r := range rerouted {
		lg.Warn("unrecognized_status_rerouted", map[string]any{"record_id": r.ID})
	}

	now := time.Now().UTC()
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Stage", "Customer", "Event date", "Guests", "Urgent")
	for _, stage := range domain.Stages() {
		for _, rec := range model.Column(stage) {
			urgent := ""
			if pipeline.IsUrgent(rec.Status, rec.QuoteSentAt, now) {
				urgent = "YES"
			}
			_ = table.Append([]string{
				string(stage),
				rec.CustomerName,
				rec.EventDate.Format("2006-01-02"),
				strconv.Itoa(rec.GuestCount),
				urgent,
			})
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	fmt.Printf("\n%d orders across %d stages\n", model.Len(), len(domain.Stages()))
	return nil
}
