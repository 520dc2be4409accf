// Package core contains the business logic for the clipper.
// It is designed to be framework-agnostic and can be used independently
// of any transport or persistence concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Session, Space, ContentSnapshot, Settings)
// - sanitize: Removal-policy HTML sanitizer for untrusted fragments
// - extract: Readable-article extraction from captured pages
// - bridge: Request/response protocol to the in-page content agent
// - docmost: Stateless API client for the document-management server
// - clip: Self-contained clip document assembly
// - controller: The session/view state machine driving one activation
// - settings: Typed access to the persisted key-value schema
// - errors: Custom error types for failure classification
// - interfaces: Contracts for external dependencies (store, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
package core
