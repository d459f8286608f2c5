// Package user provides the User aggregate for registered participants of the
// delivery service. A user is either a client placing orders or a courier
// delivering them; the role is fixed at registration.
//
// Ratings live on the user and start at DefaultRating so a fresh account is
// not penalized in listings before anyone rated it.
package user
