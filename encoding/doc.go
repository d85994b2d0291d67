// Package encoding implements the squeeze codecs for sequences of uint32 values.
//
// All codecs read from a bitstream.Reader and write to a bitstream.Writer. The
// layers, from the bottom up:
//
//   - Binary codes: fixed-width values (WriteBinary / ReadBinary)
//   - Gamma codes: variable-length codes for positive integers (WriteGamma / ReadGamma)
//   - Block packing: values grouped in blocks of 1, 2 or 4 under a 4-bit selector
//     that adjusts a running bit width (WriteBlocks / ReadBlocks)
//   - Delta arrays: a gamma-coded count followed by packed blocks
//     (WriteDeltaArray / ReadDeltaArray)
//   - Monotonic arrays: strictly increasing values stored as the delta array of
//     their gaps minus one (WriteArray / ReadArray)
//
// # Block Packing
//
// The packer is a member of the Simple-9/Simple-16 family, but the bit width is
// not restated per block. Each block starts with a selector from a fixed table
// of 16 entries; the selector moves the running width (starting at 8) by a
// small step and tells how many values follow, each stored in exactly that
// many bits:
//
//	selector  0: width = 30, 1 value (escape)
//	selector  1: width -= 4, 1 value
//	selector  2: width -= 2, 1 value      selector  3: width -= 2, 2 values
//	selector  4: width -= 1, 1 value      selector  5: width -= 1, 2 values
//	selector  6: width -= 1, 4 values
//	selector  7: width += 0, 1 value      selector  8: width += 0, 2 values
//	selector  9: width += 0, 4 values
//	selector 10: width += 1, 1 value      selector 11: width += 1, 2 values
//	selector 12: width += 1, 4 values
//	selector 13: width += 2, 1 value      selector 14: width += 2, 2 values
//	selector 15: width += 4, 1 value
//
// A block at width 0 carries no payload bits at all, so runs of zeros cost 4
// bits per 4 values.
//
// # Limits
//
// Values must fit in 30 bits (MaxValue). Encoders validate their whole input
// before writing anything, so a rejected call leaves the writer untouched.
// Decoders never return a partially decoded slice.
//
// # Example
//
//	w := bitstream.NewWriter()
//	defer w.Finish()
//
//	if err := encoding.WriteArray(w, []uint32{3, 7, 8, 120}); err != nil {
//	    return err
//	}
//	w.Sync()
//
//	values, err := encoding.ReadArray(bitstream.NewReader(w.Bytes()))
package encoding
