package ktx2cube

import "encoding/binary"

// Khronos Data Format basic descriptor values for RGB9E5.
const (
	dfdColorModelRGBSDA = 1
	dfdPrimariesBT709   = 1
	dfdTransferLinear   = 1

	dfdSampleCount = 6
	dfdBlockSize   = 24 + 16*dfdSampleCount
	dfdVersion     = 2

	dfdChannelRed      = 0
	dfdChannelGreen    = 1
	dfdChannelBlue     = 2
	dfdChannelExponent = 3

	dfdQualifierExponent = 1 << 1
)

// rgb9e5DFD builds the Data Format Descriptor block for
// VK_FORMAT_E5B9G9R9_UFLOAT_PACK32: a 4-byte total-length prefix and one
// basic descriptor block (vendor 0, type 0, version 2) with six samples.
//
// Each colour channel contributes a 9-bit mantissa sample plus a view of
// the single 5-bit shared exponent in bits 27-31. The exponent sample is
// deliberately repeated at the same bit range for every channel; that is
// how shared-exponent formats are described. The length prefix is patched
// once the block is complete.
func rgb9e5DFD() []byte {
	dfd := make([]byte, 0, 4+dfdBlockSize)
	dfd = binary.LittleEndian.AppendUint32(dfd, 0) // total length, patched below
	dfd = binary.LittleEndian.AppendUint32(dfd, 0) // vendor 0, descriptor type 0
	dfd = binary.LittleEndian.AppendUint32(dfd, dfdBlockSize<<16|dfdVersion)
	dfd = binary.LittleEndian.AppendUint32(dfd, dfdColorModelRGBSDA|dfdPrimariesBT709<<8|dfdTransferLinear<<16)
	dfd = binary.LittleEndian.AppendUint32(dfd, 0) // texel block dimensions: 1x1x1
	dfd = binary.LittleEndian.AppendUint32(dfd, 4) // bytesPlane0: one 32-bit word
	dfd = binary.LittleEndian.AppendUint32(dfd, 0) // bytesPlane4-7

	dfd = appendDFDSample(dfd, 0, 9, dfdChannelRed, 0, 0, 8448)
	dfd = appendDFDSample(dfd, 27, 5, dfdChannelExponent, dfdQualifierExponent, 15, 31)
	dfd = appendDFDSample(dfd, 9, 9, dfdChannelGreen, 0, 0, 8448)
	dfd = appendDFDSample(dfd, 27, 5, dfdChannelExponent, dfdQualifierExponent, 15, 31)
	dfd = appendDFDSample(dfd, 18, 9, dfdChannelBlue, 0, 0, 8448)
	dfd = appendDFDSample(dfd, 27, 5, dfdChannelExponent, dfdQualifierExponent, 15, 31)

	binary.LittleEndian.PutUint32(dfd[:4], uint32(len(dfd)))

	return dfd
}

func appendDFDSample(dfd []byte, bitOffset, bitLength, channel, qualifiers, lower, upper uint32) []byte {
	dfd = binary.LittleEndian.AppendUint32(dfd, bitOffset|(bitLength-1)<<16|channel<<24|qualifiers<<28)
	dfd = binary.LittleEndian.AppendUint32(dfd, 0) // sample position: unused
	dfd = binary.LittleEndian.AppendUint32(dfd, lower)
	dfd = binary.LittleEndian.AppendUint32(dfd, upper)

	return dfd
}
