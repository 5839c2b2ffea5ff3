package reportfmt

import (
	"bytes"
	"io"
	"os"
)

// Formatter applies one configuration to any number of documents. It holds
// no per-document state, so a single Formatter is safe to reuse; each
// Format call works on its own parsed copy of the input.
type Formatter struct {
	cfg ReportConfig
	log *Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger overrides the formatter's logger.
func WithLogger(l *Logger) Option {
	return func(f *Formatter) {
		f.log = l
	}
}

// New creates a Formatter from a configuration. The config is copied, so
// later mutations by the caller do not affect the formatter.
func New(cfg ReportConfig, opts ...Option) *Formatter {
	f := &Formatter{
		cfg: cfg,
		log: GetLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns a copy of the formatter's configuration.
func (f *Formatter) Config() ReportConfig {
	return f.cfg
}

type stage struct {
	name string
	run  func(*docxPackage) error
}

// Format reads a DOCX document, applies the full formatting pipeline, and
// returns the formatted document. Parts the pipeline does not touch are
// preserved byte for byte.
func (f *Formatter) Format(r io.Reader) (io.Reader, error) {
	pkg, err := openPackage(r)
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}

	stages := []stage{
		{"page setup", f.applyPageSetup},
		{"styles", f.applyStyles},
		{"table of contents", f.insertTOC},
		{"page numbers", f.applyPageNumbers},
		{"paragraph format sweep", f.forceParagraphFormat},
		{"run font sweep", f.forceRunFonts},
	}
	for _, s := range stages {
		f.log.Debug("running stage: %s", s.name)
		if err := s.run(pkg); err != nil {
			return nil, NewFormatError(s.name, err)
		}
	}

	var buf bytes.Buffer
	if err := pkg.save(&buf); err != nil {
		return nil, NewDocumentError("save", "", err)
	}
	f.log.Info("formatted document (%d bytes)", buf.Len())
	return &buf, nil
}

// FormatBytes is Format over byte slices.
func (f *Formatter) FormatBytes(input []byte) ([]byte, error) {
	out, err := f.Format(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(out)
}

// FormatFile formats inputPath and writes the result to outputPath.
func (f *Formatter) FormatFile(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return NewDocumentError("open", inputPath, err)
	}
	defer in.Close()

	out, err := f.Format(in)
	if err != nil {
		if de, ok := err.(*DocumentError); ok && de.Path == "" {
			de.Path = inputPath
		}
		return err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return NewDocumentError("create", outputPath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, out); err != nil {
		return NewDocumentError("write", outputPath, err)
	}
	return nil
}
