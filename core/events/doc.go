// Package events defines the events published while selecting and invoking
// variants.
//
// Available event types:
//   - Selection: a selector resolved (or rejected) a key
//   - Invocation: the strategy holder ran (or refused to run) a strategy
package events
