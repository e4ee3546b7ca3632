// Package server is the HTTP surface of the card search.
//
// Routes:
//
//	GET  /        search page
//	POST /search  {"query": "...", "limit": 5, "max_distance": 0.7, "rarity": "", "colors": [], "format": ""}
//	GET  /health  vector store connectivity
//
// /search answers 400 {"error":"Query is required"} for a blank query and a
// JSON array of cards otherwise. Every request is counted and timed in the
// requests_total and request_duration_seconds metrics and traced, continuing
// any W3C trace context sent by the caller.
package server
