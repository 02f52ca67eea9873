// Package views contains the view models of the plant tracker UI: the state
// each page holds, the backend calls that populate it, and the pure data
// transforms (task ordering, overdue derivation, chart series, catalog
// filtering) the templates render from.
//
// # Overview
//
//  1. PlantCollection — the plant list with its demo-data degraded mode.
//  2. PlantDetail — one plant plus growth records and care tasks, with the
//     loading/error/ready phase machine and the record/task entry forms.
//  3. TaskBoard — the standalone per-plant task manager.
//  4. FactsCatalog / SupplierDirectory — read-only catalogs with local
//     filtering.
//  5. PlantForm — the create-plant form with field-keyed validation.
//
// # Invalidation policy
//
// No view holds authoritative state. Every mutating operation returns only
// after the authoritative re-fetch of the affected collection completes, and
// rendered state is always "last successful read", never a locally guessed
// value.
//
// # Late results and duplicate submissions
//
// Long-lived views drop late-arriving fetch results via a generation counter
// compared at apply time, and mutating operations share a SubmitGuard that
// refuses a duplicate submission while one is in flight (common.ErrBusy).
//
// # Error Handling
//
// Backend failures surface as per-view banner messages; validation failures
// wrap common.ErrValidation and never reach the backend.
package views
