// Package tracking provides the courier position sample recorded against an
// order. Real GPS samples and the synthetic seed written at acceptance share
// this entity; the read side prefers the freshest sample regardless of origin.
package tracking
