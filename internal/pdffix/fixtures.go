// internal/pdffix/fixtures.go
package pdffix

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Password protects the encrypted fixture. Fixed on purpose: readers that
// exercise these fixtures need to know it.
const Password = "testpassword"

// Builder produces exactly one fixture document.
type Builder struct {
	Name string             // short fixture name, used in logs
	File string             // output file name inside the fixtures directory
	Fn   func(string) error // builds the fixture into the given directory
}

// Builders returns the fixed fixture set in build order.
func Builders() []Builder {
	return []Builder{
		{"simple_text", "simple_text.pdf", buildSimpleText},
		{"multi_page", "multi_page.pdf", buildMultiPage},
		{"encrypted", "encrypted.pdf", buildEncrypted},
		{"image_only", "image_only.pdf", buildImageOnly},
		{"complex", "complex.pdf", buildComplex},
		{"empty", "empty.pdf", buildEmpty},
	}
}

// newLetterDoc returns a portrait letter-sized document measured in points,
// with coordinates from the top-left corner.
func newLetterDoc() *fpdf.Fpdf {
	return fpdf.New("P", "pt", "Letter", "")
}

func saveDoc(pdf *fpdf.Fpdf, path string) error {
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// drawLines draws body text top-down starting at y, stepping 20pt per line.
func drawLines(pdf *fpdf.Fpdf, x, y float64, lines []string) {
	for _, line := range lines {
		pdf.Text(x, y, line)
		y += 20
	}
}

func buildSimpleText(dir string) error {
	pdf := newLetterDoc()
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Simple Text PDF")

	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This is a simple PDF document for testing text extraction.",
		"It contains basic text that should be easily extractable.",
		"",
		"Key test points:",
		"- Plain ASCII text",
		"- Multiple lines",
		"- Standard fonts",
		"- No encryption",
		"",
		"Expected output: All text should be extracted correctly.",
	})

	return saveDoc(pdf, filepath.Join(dir, "simple_text.pdf"))
}

func buildMultiPage(dir string) error {
	pdf := newLetterDoc()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Multi-Page PDF - Page 1")
	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This is the first page of a multi-page document.",
		"It contains text that spans multiple pages.",
		"Page breaks should be handled correctly.",
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Multi-Page PDF - Page 2")
	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This is the second page.",
		"Text extraction should preserve page structure.",
		"Form feed characters may be used as page separators.",
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Multi-Page PDF - Page 3")
	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This is the final page.",
		"End of multi-page test document.",
	})

	return saveDoc(pdf, filepath.Join(dir, "multi_page.pdf"))
}

func buildEncrypted(dir string) error {
	tmp := filepath.Join(dir, "temp_unencrypted.pdf")

	pdf := newLetterDoc()
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Encrypted PDF Document")
	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This document is password protected.",
		"Password: " + Password,
		"Text extraction should fail without the password.",
	})
	if err := saveDoc(pdf, tmp); err != nil {
		return err
	}

	conf := model.NewAESConfiguration(Password, Password, 256)
	if err := api.EncryptFile(tmp, filepath.Join(dir, "encrypted.pdf"), conf); err != nil {
		return fmt.Errorf("encrypting fixture: %w", err)
	}

	if err := os.Remove(tmp); err != nil {
		return fmt.Errorf("removing intermediate file: %w", err)
	}
	return nil
}

func buildImageOnly(dir string) error {
	tmp := filepath.Join(dir, "temp_image.png")
	if err := writeTextImage(tmp, 600, 400, []string{
		"This is text rendered as an image",
		"It cannot be extracted as text",
		"OCR would be needed to read this",
		"Expected: [image page] or similar",
	}); err != nil {
		return err
	}

	pdf := newLetterDoc()
	pdf.AddPage()
	pdf.ImageOptions(tmp, 72, 92, 400, 300, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	err := saveDoc(pdf, filepath.Join(dir, "image_only.pdf"))

	if rmErr := os.Remove(tmp); rmErr != nil && err == nil {
		return fmt.Errorf("removing intermediate image: %w", rmErr)
	}
	return err
}

func buildComplex(dir string) error {
	pdf := newLetterDoc()
	// Core fonts are Latin-1; the translator maps what cp1252 can hold and
	// degrades the rest, which is itself useful extraction input.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, "Complex PDF Document")
	pdf.SetFont("Helvetica", "", 12)
	drawLines(pdf, 72, 112, []string{
		"This PDF contains various content types:",
		tr("• Regular text"),
		tr("• Special characters: áéíóú ñ ç ü"),
		tr("• Unicode: 你好 こんにちは русский"),
		tr("• Numbers: 12345.67"),
		tr(`• Symbols: @#$%^&*()_+-={}[]|\:;"'<>?,./`),
	})

	pdf.AddPage()
	pdf.SetFont("Times", "", 14)
	pdf.Text(72, 72, "Different fonts and formatting")
	pdf.SetFont("Courier", "", 10)
	pdf.Text(72, 112, "Monospace font text")
	pdf.Text(72, 132, "Code-like content: if (x == 1) { return true; }")
	pdf.SetFont("Helvetica", "I", 12)
	pdf.Text(72, 172, "Italic text for emphasis")

	return saveDoc(pdf, filepath.Join(dir, "complex.pdf"))
}

// buildEmpty produces a document with a single blank page and no text
// objects, so extractors see zero content.
func buildEmpty(dir string) error {
	pdf := newLetterDoc()
	pdf.AddPage()
	return saveDoc(pdf, filepath.Join(dir, "empty.pdf"))
}
