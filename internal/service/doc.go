// Package service contains the thin service aggregations presentation talks
// to directly for flows that never grew discrete use cases. Each service
// wraps one repository type (plus, where noted, the use cases it fronts) and
// receives its dependencies through constructor injection.
//
// The heavier single-operation flows live in internal/usecase; the services
// here exist because some presentation code wants one object with a handful
// of related operations instead of a use case per call.
package service
