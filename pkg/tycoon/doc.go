// Package tycoon implements the gamification math: XP rollover into
// levels, rank derivation from cumulative revenue, and straight-line
// asset depreciation. All functions are pure; persistence lives in the
// sqlite store.
package tycoon
