package converter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// maxDocxBodySize bounds the decompressed document part.
const maxDocxBodySize = 32 << 20

// docxParagraphs returns the text of every non-empty w:p element. Runs are
// concatenated, so a placeholder split across runs by Word comes out whole.
func docxParagraphs(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("docx archive has no %s", docxBodyPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", docxBodyPart, err)
	}
	defer rc.Close()

	return parseDocumentXML(io.LimitReader(rc, maxDocxBodySize))
}

// parseDocumentXML keeps one builder per open w:p. A paragraph nested in a
// text box is emitted on its own and leaves the enclosing text intact.
func parseDocumentXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		open       []*strings.Builder
		inText     bool
	)
	write := func(s string) {
		if len(open) > 0 {
			open[len(open)-1].WriteString(s)
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", docxBodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = true
			case "tab":
				write("\t")
			case "br", "cr":
				write("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if len(open) == 0 {
					continue
				}
				current := open[len(open)-1]
				open = open[:len(open)-1]
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				write(string(t))
			}
		}
	}

	return paragraphs, nil
}
