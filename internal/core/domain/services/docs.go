// Package services contains stateless domain services that work across
// aggregates. OrderViews derives the role-specific projections of the order
// set (available work, active orders, history, financial summary) that every
// read surface of the application is built from.
package services
