// Package hexcodec converts between byte sequences and hexadecimal text.
//
// Format emits compact lowercase hex with no prefix and no separators.
// FormatPretty emits uppercase byte pairs separated by '.', a stable format
// suitable for logs and golden-output comparisons.
//
// Parse fills a fixed-width destination from the tail: when the text holds
// fewer digits than the destination has room for, the decoded bytes land at
// the end of the buffer, as if the text were zero-padded on the left. This is
// big-endian numeric parsing into a fixed-width field, not sequential
// left-to-right filling. Callers detect short input by comparing the returned
// digit count against 2*len(dst).
package hexcodec
