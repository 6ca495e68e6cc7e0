// Package motd parses Minecraft legacy formatting codes and lays out
// formatted MOTD lines onto a drawing surface.
//
// Tokenize turns a raw MOTD into fragments, one per character, each
// tagged with the code that precedes it. Renderer.DrawLine walks those
// fragments with a per-line StyleState and draws them, handling
// obfuscation, underline and strikethrough bars, italic spacing and the
// baseline correction needed when the surface falls back to another font.
package motd
