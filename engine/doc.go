// Package engine is a small frame-loop game engine: entities and groups
// composed into a scene, a collision system that dispatches registered
// callbacks, a cooperative timer clock, and a host-driven frame loop.
//
// Everything in this package runs on a single goroutine. Backends deliver
// frames through a Host and draw through a Renderer.
package engine

//go:generate go tool mockgen -destination=mocks/renderer.go -package=mocks github.com/plus3/tankduel/engine Renderer
