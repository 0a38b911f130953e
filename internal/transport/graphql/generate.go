// Package graphql provides the GraphQL transport layer for the Hearth
// backend: schema, resolvers, error handling and per-request
// dataloaders for the household/kitchen management API. Scalar types
// (UUID, DateTime) and the executable schema are generated via gqlgen
// from the schema files.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
