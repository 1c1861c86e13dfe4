// Package order provides the per-store Order aggregate and the status machine
// every ordered line item obeys.
//
// The package includes:
//   - ItemStatus: the forward-only item machine RECEIVED -> QUEUED -> PREPARING ->
//     READY_FOR_PICKUP -> DELIVERED
//   - OrderItem: one product line of an order, carrying its own status
//   - Order: the purchase header that owns the items of exactly one store
//   - Status: the aggregate status projected from the items (Pagado, En espera, Completado)
//
// Key business rules:
//   - Item transitions only move one step forward; re-applying the current status is a no-op
//   - Regressions and skipped steps fail with ErrInvalidTransition
//   - The order total is Σ unitPrice × (1 − discount/100) × quantity, rounded half-up to cents
//   - An order is Completado only once every item is DELIVERED
package order
