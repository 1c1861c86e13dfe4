// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier of orders, stores, products, roles and actors
//   - Money: a non-negative decimal amount with half-up cent rounding
//   - Percent: a discount in the closed range 0..100
//   - Date: a zone-less calendar day used by the accounting reports
//
// All value objects are immutable. Their zero values are invalid and fail
// Validate, so they must be created through the provided constructors.
package kernel
