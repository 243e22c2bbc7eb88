// Package catalog provides the MacBook model catalog for the catalog service.
//
// The catalog is a fixed, read-only collection of MacBook hardware models
// (2010–2025) split into two families: MacBook Air and MacBook Pro. It is
// loaded once at process start from a JSON document and never mutated or
// reloaded; a missing or invalid dataset aborts startup.
//
// # Key Types
//
//   - Device: one hardware model (name, model ID, dates, support status)
//   - SupportStatus: lifecycle stage; the valid member set is data-driven
//     from the dataset's support_status_definitions keys
//   - Group: named family selection (air, pro, or the union)
//   - Store: the immutable in-memory dataset with lookup and metadata access
//
// # Query Operators
//
// FilterByStatus, Search, and SortBy are pure functions over device slices.
// Each allocates a fresh output and is the identity when its parameter is
// absent, so the REST handlers can compose them unconditionally in a fixed
// pipeline: group selection → status filter → search → sort.
//
// # Usage
//
//	store, err := catalog.Load("data/macbook_models.json")
//	if err != nil {
//	    return err // fail fast: no partial service
//	}
//
//	devices := store.Devices(catalog.ParseGroup("air"))
//	devices = catalog.FilterByStatus(devices, "supported")
//	devices = catalog.Search(devices, "m1")
//	devices = catalog.SortBy(devices, "release_date", "asc")
//
// # Thread Safety
//
// The Store is immutable after Load and every accessor returns fresh copies,
// so all methods and operators are safe for concurrent use without locking.
package catalog
