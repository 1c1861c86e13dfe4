// Package services holds domain logic that spans several aggregates of the
// fulfillment pipeline.
//
// The package includes:
//   - OrderSplitter: partitions a client's cart by store and builds one order per store
//   - StageResolver: turns ownership, membership and role into the caller's stages
//   - RevenueCalculator: daily totals and the trailing monthly average of completed orders
package services
