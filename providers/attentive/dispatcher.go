package attentive

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
)

// Batch is one host invocation: a constant resource/operation pair applied
// to an ordered list of input items.
type Batch struct {
	Resource       string
	Operation      string
	Items          []utils.Params
	ContinueOnFail bool
}

// Result is one output record. On a tolerated failure Data carries the
// error message and Error is set; ItemIndex always names the originating
// input item.
type Result struct {
	ItemIndex int            `json:"itemIndex"`
	Data      map[string]any `json:"data"`
	Error     string         `json:"error,omitempty"`
}

// Dispatcher routes a batch to the matching resource module and collects
// results across all items, strictly in input order.
type Dispatcher struct {
	registry *Registry
	logger   *logging.Logger
}

func NewDispatcher(registry *Registry, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Run processes every item of the batch sequentially. Without
// ContinueOnFail the first failure aborts the remaining items; with it,
// failures become per-item error records and processing continues.
func (d *Dispatcher) Run(ctx context.Context, batch Batch) ([]Result, error) {
	log := d.logger.WithFields(logrus.Fields{
		"execution_id": uuid.New().String(),
		"resource":     batch.Resource,
		"operation":    batch.Operation,
	})

	resource, exists := d.registry.Get(batch.Resource)
	if !exists {
		return nil, &UnsupportedOperationError{
			Resource:  batch.Resource,
			Operation: batch.Operation,
		}
	}

	results := make([]Result, 0, len(batch.Items))

	for i, item := range batch.Items {
		records, err := resource.Execute(ctx, batch.Operation, item)
		if err != nil {
			if !batch.ContinueOnFail {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			log.WithField("item", i).Warnf("item failed: %v", err)
			results = append(results, Result{
				ItemIndex: i,
				Data:      map[string]any{"error": err.Error()},
				Error:     err.Error(),
			})
			continue
		}

		for _, record := range records {
			results = append(results, Result{ItemIndex: i, Data: record})
		}
	}

	log.Infof("processed %d items into %d results", len(batch.Items), len(results))
	return results, nil
}
