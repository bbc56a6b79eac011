// Command popvcf encodes and decodes the popvcf dialect of VCF text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/mewkiz/popvcf"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: popvcf encode|decode [OPTION]... [FILE]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "encode [OPTION]... [FILE]")
	fmt.Fprintln(os.Stderr, "  Encode a VCF (or VCF.gz) file, or stdin if FILE is omitted.")
	fmt.Fprintln(os.Stderr, "  -I string   input format: v (plain VCF) or z/g (gzip/bgzip) (default \"v\")")
	fmt.Fprintln(os.Stderr, "  -o string   output path (default: FILE with its extension replaced by .pvcf, or stdout)")
	fmt.Fprintln(os.Stderr, "  -O string   output format: v (plain), z (gzip), s (zstd), l (lz4) (default \"v\")")
	fmt.Fprintln(os.Stderr, "  -l int      output compression level")
	fmt.Fprintln(os.Stderr, "  -@ int      compression threads")
	fmt.Fprintln(os.Stderr, "  -f          overwrite an existing output file")
	fmt.Fprintln(os.Stderr, "  -no-prev-line   disable cross-line back-references")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "decode [OPTION]... [FILE]")
	fmt.Fprintln(os.Stderr, "  Decode a popvcf file, or stdin if FILE is omitted.")
	fmt.Fprintln(os.Stderr, "  -I string   input format: v (plain) or z/g (gzip/bgzip) (default \"v\")")
	fmt.Fprintln(os.Stderr, "  -r string   region filter: chrom[:begin[-end]]")
	fmt.Fprintln(os.Stderr, "  -o string   output path (default: FILE with its extension replaced by .vcf, or stdout)")
	fmt.Fprintln(os.Stderr, "  -O string   output format: v (plain) or z (gzip) (default \"v\")")
	fmt.Fprintln(os.Stderr, "  -f          overwrite an existing output file")
}

// resolveOutPath mirrors the default-output-path convention of this
// module's teacher's own format-conversion commands: when the user
// didn't pass -o and the input isn't stdin, the output defaults to the
// input path with its extension swapped for ext, in the same directory,
// rather than stdout.
func resolveOutPath(explicit, inPath, ext string, force bool) string {
	outPath := explicit
	if outPath == "" {
		if inPath == "" || inPath == "-" {
			return "-"
		}
		outPath = pathutil.TrimExt(inPath) + ext
	}
	if outPath != "-" && osutil.Exists(outPath) && !force {
		log.Fatalf("popvcf: output file %q already exists (use -f to overwrite)", outPath)
	}
	return outPath
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("popvcf: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	subcmd := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)

	var ret int
	switch subcmd {
	case "encode":
		ret = runEncode()
	case "decode":
		ret = runDecode()
	case "-h", "-help", "--help":
		usage()
		ret = 0
	default:
		fmt.Fprintf(os.Stderr, "popvcf: unknown command %q\n", subcmd)
		usage()
		ret = 1
	}
	os.Exit(ret)
}

func runEncode() int {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	inputFormat := fs.String("I", "v", "input format: v|z|g")
	outPath := fs.String("o", "", "output path")
	outputFormat := fs.String("O", "v", "output format: v|z|s|l")
	level := fs.Int("l", 0, "output compression level")
	threads := fs.Int("@", 1, "compression threads")
	force := fs.Bool("f", false, "overwrite an existing output file")
	noPrevLine := fs.Bool("no-prev-line", false, "disable cross-line back-references")
	fs.Usage = usage
	fs.Parse(os.Args[1:])

	inPath := ""
	if fs.NArg() > 0 {
		inPath = fs.Arg(0)
	}

	in, err := popvcf.OpenInput(inPath, parseInputFormat(*inputFormat))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer in.Close()

	resolvedOut := resolveOutPath(*outPath, inPath, ".pvcf", *force)
	out, err := popvcf.OpenOutput(resolvedOut, parseOutputFormat(*outputFormat), *level, *threads)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if _, err := popvcf.Encode(out, in, popvcf.EncodeOptions{NoPreviousLine: *noPrevLine}); err != nil {
		log.Fatalf("%+v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("%+v", err)
	}
	return 0
}

func runDecode() int {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	inputFormat := fs.String("I", "v", "input format: v|z|g")
	region := fs.String("r", "", "region filter: chrom[:begin[-end]]")
	outPath := fs.String("o", "", "output path")
	outputFormat := fs.String("O", "v", "output format: v|z")
	force := fs.Bool("f", false, "overwrite an existing output file")
	fs.Usage = usage
	fs.Parse(os.Args[1:])

	inPath := ""
	if fs.NArg() > 0 {
		inPath = fs.Arg(0)
	}

	in, err := popvcf.OpenInput(inPath, parseInputFormat(*inputFormat))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer in.Close()

	resolvedOut := resolveOutPath(*outPath, inPath, ".vcf", *force)
	out, err := popvcf.OpenOutput(resolvedOut, parseOutputFormat(*outputFormat), 0, 1)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if _, err := popvcf.Decode(out, in, popvcf.DecodeOptions{Region: *region}); err != nil {
		log.Fatalf("%+v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("%+v", err)
	}
	return 0
}

func parseInputFormat(s string) popvcf.InputFormat {
	switch s {
	case "z", "g":
		return popvcf.FormatGzip
	default:
		return popvcf.FormatPlain
	}
}

func parseOutputFormat(s string) popvcf.OutputFormat {
	switch s {
	case "z":
		return popvcf.OutputGzip
	case "s":
		return popvcf.OutputZstd
	case "l":
		return popvcf.OutputLZ4
	default:
		return popvcf.OutputPlain
	}
}
