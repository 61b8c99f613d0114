// ktx2cube packs a raw RGBA16F cubemap mip chain into a KTX2 file with
// RGB9E5 shared-exponent texels and optional supercompression.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/envmapper/ktx2cube"
)

var (
	widthFlag  = flag.Int("width", 0, "base mip width in texels")
	heightFlag = flag.Int("height", 0, "base mip height in texels")
	mipsFlag   = flag.Int("mips", 0, "mip level count (0 means full chain)")
	schemeFlag = flag.String("scheme", "zstd", "supercompression scheme")
	levelFlag  = flag.Int("level", 0, "compression level (0 means codec default)")
	outputFlag = flag.String("o", "", "output KTX2 path")
)

const usageStr = `ktx2cube packs a raw HDR cubemap into a supercompressed KTX2 file.

Usage:

    ktx2cube -width W -height H -o out.ktx2 [path]

The path to the input file is optional. If omitted, stdin is read. The
input must hold six face mip chains of RGBA16F texels in face-major,
mip-minor order.

Optional flags:

    -mips=N      mip level count (default: the full chain for WxH)
    -scheme=S    zstd (default), zlib or none
    -level=N     compression level for the selected codec
`

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	if *widthFlag < 1 || *heightFlag < 1 {
		return errors.New("must specify -width and -height")
	}
	if *outputFlag == "" {
		return errors.New("must specify -o")
	}

	scheme, err := parseScheme(*schemeFlag)
	if err != nil {
		return err
	}

	inFile := os.Stdin
	switch flag.NArg() {
	case 0:
		// No-op.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		inFile = f
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	data, err := io.ReadAll(inFile)
	if err != nil {
		return err
	}

	mips := *mipsFlag
	if mips == 0 {
		mips = ktx2cube.MipLevelCount(*widthFlag, *heightFlag)
	}

	img, err := ktx2cube.NewSourceImage(*widthFlag, *heightFlag, mips, data)
	if err != nil {
		return err
	}

	return ktx2cube.WriteWithOptions(img, *outputFlag, &ktx2cube.WriteOptions{
		Scheme: scheme,
		Level:  *levelFlag,
	})
}

func parseScheme(name string) (ktx2cube.Supercompression, error) {
	switch name {
	case "zstd":
		return ktx2cube.SupercompressionZstandard, nil
	case "zlib":
		return ktx2cube.SupercompressionZlib, nil
	case "none":
		return ktx2cube.SupercompressionNone, nil
	default:
		return 0, fmt.Errorf("main: bad -scheme flag %q", name)
	}
}
