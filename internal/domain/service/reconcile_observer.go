package service

import "time"

// ReconcileOutcome summarises one reconciliation of a parent's children.
type ReconcileOutcome struct {
	Parent  string // "order" or "daily_plan"
	Created int
	Updated int
	Deleted int
	Elapsed time.Duration
	Err     error
}

// ReconcileObserver receives reconciliation outcomes for operational metrics.
type ReconcileObserver interface {
	ObserveReconcile(outcome ReconcileOutcome)
}
