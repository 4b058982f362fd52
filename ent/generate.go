// Package ent holds the generated entity client (not committed; run go generate).
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert,sql/execquery ./schema
