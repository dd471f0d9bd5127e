// bio-fastq converts between sequencing-quality file formats: the three
// FASTQ quality encodings, QUAL, and paired FASTA/QUAL input.
//
// Examples:
//
//	Re-encode an old Solexa pipeline file as standard Sanger FASTQ:
//
//	    bio-fastq -from fastq-solexa -to fastq-sanger -in old.fastq -out new.fastq
//
//	Combine a FASTA file and its matching QUAL file into FASTQ:
//
//	    bio-fastq -from fasta -qual reads.qual -to fastq-sanger -in reads.fasta -out reads.fastq
//
// Inputs may be gzip-compressed; "-" means stdin or stdout.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/0820LL/biopython/encoding/fastq"
	"github.com/0820LL/biopython/encoding/qual"
	"github.com/0820LL/biopython/encoding/seq"
	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	inFlag   = flag.String("in", "-", "Input path, or - for stdin.")
	outFlag  = flag.String("out", "-", "Output path, or - for stdout.")
	fromFlag = flag.String("from", "fastq-sanger", "Input format: fastq-sanger, fastq-solexa, fastq-illumina, qual, or fasta (requires -qual).")
	toFlag   = flag.String("to", "fastq-sanger", "Output format: fastq-sanger, fastq-solexa, fastq-illumina, or qual.")
	qualFlag = flag.String("qual", "", "QUAL file paired with a FASTA input (only with -from fasta).")
	wrapFlag = flag.Int("wrap", qual.DefaultWrap, "Line width for QUAL output; 0 disables wrapping.")
)

type recordScanner interface {
	Scan(*seq.Record) bool
	Err() error
}

type recordWriter interface {
	Write(*seq.Record) error
}

var dialects = map[string]fastq.Dialect{
	"fastq-sanger":   fastq.Sanger,
	"fastq-solexa":   fastq.Solexa,
	"fastq-illumina": fastq.Illumina,
}

func openIn(ctx context.Context, path string) (io.Reader, func()) {
	if path == "-" {
		return os.Stdin, func() {}
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %v: %v", path, err)
	}
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	return r, func() {
		if err := in.Close(ctx); err != nil {
			log.Fatalf("close %v: %v", path, err)
		}
	}
}

func openOut(ctx context.Context, path string) (io.Writer, func()) {
	if path == "-" {
		return os.Stdout, func() {}
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Fatalf("create %v: %v", path, err)
	}
	return out.Writer(ctx), func() {
		if err := out.Close(ctx); err != nil {
			log.Fatalf("close %v: %v", path, err)
		}
	}
}

func newScanner(ctx context.Context) (recordScanner, func()) {
	switch *fromFlag {
	case "fasta":
		if *qualFlag == "" {
			log.Fatal("-from fasta requires a paired -qual file")
		}
		fastaIn, closeFasta := openIn(ctx, *inFlag)
		qualIn, closeQual := openIn(ctx, *qualFlag)
		return qual.NewPairScanner(fastaIn, qualIn), func() {
			closeFasta()
			closeQual()
		}
	case "qual":
		in, closeIn := openIn(ctx, *inFlag)
		return qual.NewReader(in), closeIn
	default:
		d, ok := dialects[*fromFlag]
		if !ok {
			log.Fatalf("unknown input format %q", *fromFlag)
		}
		in, closeIn := openIn(ctx, *inFlag)
		return fastq.NewReader(in, d), closeIn
	}
}

func newWriter(w io.Writer) recordWriter {
	if *toFlag == "qual" {
		qw := qual.NewWriter(w)
		qw.Wrap = *wrapFlag
		return qw
	}
	d, ok := dialects[*toFlag]
	if !ok {
		log.Fatalf("unknown output format %q", *toFlag)
	}
	return fastq.NewWriter(w, d)
}

func main() {
	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	sc, closeIn := newScanner(ctx)
	out, closeOut := openOut(ctx, *outFlag)
	w := newWriter(out)

	var (
		rec seq.Record
		n   int
	)
	for sc.Scan(&rec) {
		if err := w.Write(&rec); err != nil {
			log.Fatalf("write record %q: %v", rec.ID, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read %v: %v", *inFlag, err)
	}
	closeOut()
	closeIn()
	log.Printf("Converted %d records", n)
}
