// Package display turns loosely-typed API resources into ordered,
// display-ready rows.
//
// A Record is the decoded JSON object returned by the orchestration API.
// Its keys keep the API's native casing and its values may be scalars or
// nested objects and arrays. Not every field is guaranteed to be present.
//
// Presentation happens in three steps:
//
//   - A ColumnMap declares, in preferred display order, which API fields
//     may be shown and the label each one gets.
//   - SelectColumns intersects the ColumnMap with the fields actually
//     present on a Record and yields a Projection: index-aligned labels
//     and field names. Absent fields are skipped; undeclared fields are
//     ignored.
//   - FormatRow (or ItemProperties, which also applies the lower-case
//     field normalization of generic property extraction) looks the
//     projected fields up on the Record and runs any registered
//     Formatter, so structured values such as error details or link
//     collections become flat, readable strings.
//
// RenderShowOne and RenderList write the result as Field/Value or
// multi-row tables using go-pretty.
//
// The column maps, mixed-case field sets and formatter registries in this
// package are package-level values that are never modified after
// initialization and can be shared freely.
package display
