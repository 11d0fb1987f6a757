// Package model provides the data structures shared between the pipeline
// runner and its observers. It defines the per-stage metadata record and the
// option interface observers implement to follow a run.
package model
