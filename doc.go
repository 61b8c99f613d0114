/*
Package ktx2cube packs uncompressed HDR cubemaps into KTX2 container files.

The input is a single contiguous RGBA16F buffer holding six complete face
mip chains in face-major, mip-minor order. Each texel is repacked into the
32-bit RGB9E5 shared-exponent format (VK_FORMAT_E5B9G9R9_UFLOAT_PACK32),
each mip level is supercompressed with Zstandard (or ZLIB, or stored raw),
and the result is serialized as a KTX2 file: header, level index, Data
Format Descriptor, then the compressed level payloads largest mip first.

The package focuses on the write path only; decoding KTX2 files is out of
scope.
*/
package ktx2cube
