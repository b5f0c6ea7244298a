// Package content defines the typed slide payloads produced by content
// generation and consumed by layout matching: decks, per-slide payloads,
// bullet lists with nested groups, charts, and tables. Payloads decode
// once at the JSON boundary; everything downstream works on typed data.
package content
