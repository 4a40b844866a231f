// Package domain contains the core entities of the idea generator: the
// interest request a user submits and the ideas produced for it. It is
// independent of any model provider or delivery mechanism.
package domain
