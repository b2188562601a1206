// Package connectors provides the driven adapters that acquire text for
// analysis. Each connector knows how to turn a domain.Source into lines.
//
// Connectors are wired into the core services at startup.
package connectors
