// Package kernel provides the shared value objects of the admin domain:
//   - UUID: entity identifier over github.com/google/uuid
//   - Money: non-negative amount over github.com/shopspring/decimal
//   - Clock: the source of "now" for timestamps stamped by the domain
//
// Zero values of UUID and Money are invalid and fail Validate.
package kernel
