// Package order provides the catering order aggregate and its status machine.
//
// The package includes:
//   - Order: the aggregate root holding the booking, its price and its status
//   - Status: the lifecycle state machine
//   - Number: the human-readable order number
//   - Transition: a status change waiting to be written to the history trail
//   - CreatedEvent: the fact published to the statistics projection
//
// Key business rules:
//   - The total is always menu price + delivery fee, both recomputed from the
//     headcount and the menu unit price whenever the headcount changes
//   - Headcount must reach the menu minimum
//   - Only pending orders can be edited or cancelled by their owner
//   - Status follows pending -> accepted -> in_preparation -> in_delivery ->
//     [awaiting_material_return] -> completed; cancelled is only reachable from pending
//   - completed and cancelled are terminal
//   - Every status change, including creation, yields exactly one Transition
package order
