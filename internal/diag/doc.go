// Package diag defines the diagnostic model shared by the lexer and its
// drivers.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Pos – where the offending lexeme starts.
//   - Text – the offending lexeme, when the code has one.
//   - Message – optional override; renderers otherwise use a catalog.
//   - Notes – optional secondary positions/messages.
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt.
//
// # Emitting diagnostics
//
// Producers hold a diag.Issuer and call Issue once per finding. Issue never
// fails and never feeds back into the producer, so a bad literal degrades its
// own value but never the token stream. *Bag is the usual sink; DedupIssuer,
// MultiIssuer and LogIssuer compose around it.
package diag
