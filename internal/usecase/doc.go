// Package usecase contains the application's single-operation use cases.
// Each use case takes its repository dependencies by constructor injection
// and exposes one Execute method. Validation happens through value-object
// and entity construction; use cases add no invariants of their own beyond
// the ones named here (e.g. registration email uniqueness).
package usecase
