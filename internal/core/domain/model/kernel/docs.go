// Package kernel provides the value objects shared by the catering domain model.
//
// The package includes:
//   - Address: a normalised postal or service address, compared case-insensitively
//   - DeliveryTime: an "HH:MM" wall-clock time at which a caterer delivers
//   - Role and Principal: the authenticated caller as resolved by the HTTP layer
//
// Value objects are immutable. Their zero values are invalid and fail Validate,
// so they must be created through the New... constructors.
package kernel
