// Package arty is the Composition Root for the Arty application.
//
// It connects the core business logic (Domain Layer) with the infrastructure adapters
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Arty manages a folder of artwork images the way a curator manages a
// catalogue. The image files stay where they are; everything Arty knows about
// them (title, artist, year, technique, dimensions, where the work is kept)
// lives in a hidden `.collection` sidecar next to them. Every Load reconciles
// the sidecar with the folder, so files copied in by hand are picked up and
// curated metadata is never lost.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Crash Safe**: The sidecar and imported images are written through a temp file and an atomic rename.
//   - **Reconciliation**: New files are appended as bare entries; known entries keep their order and metadata.
//   - **Citations**: `Image.ToReference` renders an academic reference for a work.
//   - **Pluggable Codec**: JSON by default, YAML via `WithFormat("yaml")`.
//   - **Extensible**: Other backends can be plugged in via `core.Repository`.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := arty.New(
//		arty.WithLogger(logger),
//		arty.WithLocking(true),
//	)
//
//	// Open a folder and import a picture
//	c, err := svc.Load(ctx, "./impressionists")
//	img, err := c.AddImage(ctx, "/home/me/Downloads/water-lilies.jpg")
package arty
