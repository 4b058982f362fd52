// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// ScraperState is the predicate function for scraperstate builders.
type ScraperState func(*sql.Selector)

// Story is the predicate function for story builders.
type Story func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// TagProposal is the predicate function for tagproposal builders.
type TagProposal func(*sql.Selector)
