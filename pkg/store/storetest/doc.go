// Package storetest provides a conformance test suite for campus-map store
// implementations.
//
// All store backends (memory, badger, gorm/sqlite, gorm/postgres) should pass
// these tests. The suite verifies that every implementation satisfies the
// Store behavioral contract, catching divergence between backends when store
// code changes.
//
// Usage:
//
//	func TestConformance(t *testing.T) {
//	    storetest.RunConformanceSuite(t, func(t *testing.T) store.Store {
//	        return memorystore.New()
//	    })
//	}
//
// The factory function receives *testing.T so it can call t.TempDir() for
// backends that need filesystem paths and t.Cleanup for teardown.
package storetest
