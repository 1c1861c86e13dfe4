// Package store models who may act on a store's orders.
//
// The package includes:
//   - Stage: the closed set of fulfillment stages (Recepcionista, Cocinero,
//     Despachador, Contabilidad, Administrador) and the transitions each owns
//   - StageSet: a permission set of stages
//   - Store: the owner and join code of a store
//   - Role: a store-defined bundle of stage permissions
//   - Membership: a worker's association with a store; a nil role means the
//     worker still waits for the owner to assign one
//   - JoinRequest: a worker's request to join through the store's join code
package store
