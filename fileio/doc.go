// Package fileio is the shared on-disk batch format used by every codec's
// *FromFile methods: one sequence per line, units as whitespace-separated
// decimal integers, blank lines skipped. It exists so codecs can each
// expose a thin *FromFile adapter over their stateless Encode/Decode
// without duplicating file-reading logic, the same composition the
// teacher applies by layering Process(io.Reader, io.Writer) over Scanner
// and a Tokenizer's in-memory Encode.
package fileio
