// Package persistence implements the snapshot file format for hypergraphs.
//
// A snapshot file is self-describing: its header records the codec and the
// compression the payload was written with, so a file can be opened without
// knowing how it was produced. The payload is covered by a CRC32 checksum
// that is verified on load.
package persistence
