// Package workflow orchestrates product submissions end to end:
// resolve asset URLs, persist the record, reflect the canonical result
// into the client store, and surface three-phase notices along the way.
// Every failure is converted into a notification here; nothing
// propagates upward to crash the editing surface.
package workflow

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/backend"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/notify"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/store"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/uploads"
)

// ErrSubmissionInFlight rejects an overlapping create/update attempt.
// The single-editor model assumes one submission at a time; the guard
// makes that explicit instead of leaving it to the UI.
var ErrSubmissionInFlight = errors.New("another submission is in progress")

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	// uploadFailedMessage is the generic notice for a total upload
	// failure; per-file soft failures never reach the user.
	uploadFailedMessage = "Upload Failed"
)

type Workflow struct {
	client      backend.Client
	coordinator *uploads.Coordinator
	products    *store.ProductStore
	bus         *notify.Bus
	inFlight    atomic.Bool
}

func New(client backend.Client, coordinator *uploads.Coordinator, products *store.ProductStore, bus *notify.Bus) *Workflow {
	return &Workflow{
		client:      client,
		coordinator: coordinator,
		products:    products,
		bus:         bus,
	}
}

// Submit runs one create or update attempt. The upload step fully
// settles before any backend call; a fatal upload failure aborts the
// attempt with no request issued. The store is touched only after the
// backend confirms.
func (w *Workflow) Submit(ctx context.Context, draft domain.Draft) (*domain.Product, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer w.inFlight.Store(false)

	action := ActionCreate
	pending := "Creating product..."
	if draft.IsUpdate() {
		action = ActionUpdate
		pending = "Updating product..."
	}
	noticeID := w.bus.Begin(action, pending)

	res, err := w.coordinator.Resolve(ctx, draft)
	if err != nil {
		zap.L().Error("upload step failed, aborting submission",
			zap.String("action", action), zap.Error(err))
		w.bus.Error(noticeID, action, uploadFailedMessage)
		return nil, err
	}

	payload := draft.Payload(res.Icon, res.Apk, res.FilesToDelete)

	var canonical *domain.Product
	var message string
	if draft.IsUpdate() {
		canonical, message, err = w.client.Update(ctx, payload)
	} else {
		canonical, message, err = w.client.Create(ctx, payload)
	}
	if err != nil {
		w.bus.Error(noticeID, action, err.Error())
		return nil, err
	}

	if canonical != nil {
		w.products.Merge(*canonical)
	}
	w.bus.Success(noticeID, action, message)
	return canonical, nil
}

// Delete runs the delete path. It is simpler than Submit and does not
// involve the upload coordinator.
func (w *Workflow) Delete(ctx context.Context, productID string) error {
	noticeID := w.bus.Begin(ActionDelete, "Deleting product...")

	message, err := w.client.Delete(ctx, productID)
	if err != nil {
		w.bus.Error(noticeID, ActionDelete, err.Error())
		return err
	}

	w.products.Remove(productID)
	w.bus.Success(noticeID, ActionDelete, message)
	return nil
}

// Refresh replaces the store with the backend's current list. Used for
// startup hydration and the periodic re-sync job.
func (w *Workflow) Refresh(ctx context.Context) error {
	list, err := w.client.List(ctx)
	if err != nil {
		return errors.WithMessage(err, "refresh product list")
	}
	w.products.ReplaceAll(list)
	zap.L().Debug("product store refreshed", zap.Int("count", len(list)))
	return nil
}
