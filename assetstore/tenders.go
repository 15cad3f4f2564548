package assetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/assetstore/types"
)

// AddTender validates a new tender project and puts it at the back of the
// queue with status Pending. A zero priority means the default priority.
func (s *Store) AddTender(in types.TenderInput) (tender types.TenderProject, err error) {
	defer s.observe("add_tender", time.Now(), &err)

	tender = types.TenderProject{
		Name:           strings.TrimSpace(in.Name),
		Category:       strings.TrimSpace(in.Category),
		Description:    strings.TrimSpace(in.Description),
		Status:         types.TenderPending,
		TenderDate:     strings.TrimSpace(in.TenderDate),
		EstimatedValue: in.EstimatedValue,
		ClientName:     strings.TrimSpace(in.ClientName),
		Priority:       in.Priority,
	}
	if tender.Priority == 0 {
		tender.Priority = types.DefaultTenderPriority
	}
	if err := validateTender(tender); err != nil {
		return types.TenderProject{}, err
	}

	_ = s.lockManager.execute(writeOperation, func() error {
		tender.ID = s.idGenerator.TenderID()
		s.tenders.Enqueue(tender)
		s.logger.Debug("tender queued", "tender_id", tender.ID, "priority", tender.Priority)
		return nil
	})
	return tender, nil
}

// DeleteTender removes a tender from the queue wherever it is
func (s *Store) DeleteTender(id string) (err error) {
	defer s.observe("delete_tender", time.Now(), &err)

	return s.lockManager.execute(writeOperation, func() error {
		if s.tenders.RemoveIf(func(t types.TenderProject) bool { return t.ID == id }) == 0 {
			return fmt.Errorf("tender %q: %w", id, ErrTenderNotFound)
		}
		s.logger.Debug("tender deleted", "tender_id", id)
		return nil
	})
}

// UpdateTenderStatus sets the status of a queued tender without moving it.
// Any non-empty status is accepted; see types.TenderStatuses for the usual
// workflow.
func (s *Store) UpdateTenderStatus(id, status string) error {
	status = strings.TrimSpace(status)
	return s.UpdateTender(id, func(t *types.TenderProject) error {
		t.Status = status
		return nil
	})
}

// UpdateTender edits a queued tender in place. fn receives a copy; the copy
// is validated and stored only if fn returns nil. The id cannot change.
func (s *Store) UpdateTender(id string, fn func(*types.TenderProject) error) (err error) {
	defer s.observe("update_tender", time.Now(), &err)

	return s.lockManager.execute(writeOperation, func() error {
		current, ok := s.tenders.Find(func(t types.TenderProject) bool { return t.ID == id })
		if !ok {
			return fmt.Errorf("tender %q: %w", id, ErrTenderNotFound)
		}

		edited := current
		if err := fn(&edited); err != nil {
			return err
		}
		if edited.ID != current.ID {
			return fmt.Errorf("tender id cannot change: %w", ErrInvalidInput)
		}
		if err := validateTender(edited); err != nil {
			return err
		}

		s.tenders.Update(
			func(t types.TenderProject) bool { return t.ID == id },
			func(t *types.TenderProject) { *t = edited },
		)
		s.logger.Debug("tender updated", "tender_id", id, "status", edited.Status)
		return nil
	})
}

// PeekNextTender returns the tender at the front of the queue
func (s *Store) PeekNextTender() (types.TenderProject, bool) {
	type result struct {
		tender types.TenderProject
		ok     bool
	}
	r := read(s.lockManager, func() result {
		t, ok := s.tenders.Peek()
		return result{t, ok}
	})
	return r.tender, r.ok
}

// ProcessNextTender removes and returns the tender at the front of the
// queue. Processing cannot be undone.
func (s *Store) ProcessNextTender() (tender types.TenderProject, ok bool) {
	start := time.Now()
	_ = s.lockManager.execute(writeOperation, func() error {
		tender, ok = s.tenders.Dequeue()
		s.recorder.Observe("process_tender", ok, time.Since(start))
		return nil
	})
	if ok {
		s.logger.Debug("tender processed", "tender_id", tender.ID)
	}
	return tender, ok
}

// ListTenders returns the queued tenders front to back
func (s *Store) ListTenders() []types.TenderProject {
	return read(s.lockManager, s.tenders.Items)
}

// TenderQueueLen returns the number of queued tenders
func (s *Store) TenderQueueLen() int {
	return read(s.lockManager, s.tenders.Len)
}

func validateTender(t types.TenderProject) error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("tender name is required: %w", ErrInvalidInput)
	case strings.TrimSpace(t.Category) == "":
		return fmt.Errorf("tender category is required: %w", ErrInvalidInput)
	case strings.TrimSpace(t.Status) == "":
		return fmt.Errorf("tender status is required: %w", ErrInvalidInput)
	case t.EstimatedValue < 0:
		return fmt.Errorf("estimated value cannot be negative: %w", ErrInvalidInput)
	case t.Priority < types.MinTenderPriority || t.Priority > types.MaxTenderPriority:
		return fmt.Errorf("priority must be between %d and %d, got %d: %w",
			types.MinTenderPriority, types.MaxTenderPriority, t.Priority, ErrInvalidInput)
	}
	return nil
}
