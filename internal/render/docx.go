package render

import (
	"archive/zip"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

// docx templates keep their text in WordprocessingML parts inside a zip
// container. Paragraphs (w:p) hold runs (w:r) whose text nodes (w:t) split
// the visible string at arbitrary formatting boundaries, so a placeholder
// like {{COMPANY}} can be scattered across several runs. FillDocx therefore
// reconstructs each paragraph's visible text as a whole, substitutes, and
// writes the result back into the paragraph's first text node, clearing the
// rest. Body, table cells, and header/footer parts are all covered: tables
// nest their paragraphs inside document.xml, headers and footers are
// separate parts matched by partNameRe.

// partNameRe selects the archive parts that carry replaceable text.
var partNameRe = regexp.MustCompile(`^word/(document|header\d*|footer\d*)\.xml$`)

var (
	paragraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	textNodeRe  = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?/>|<w:t(?: [^>]*)?>.*?</w:t>`)
	textInnerRe = regexp.MustCompile(`(?s)^<w:t(?: [^>]*)?>(.*)</w:t>$`)
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&",
)

// FillDocx fills the docx template at templatePath into outPath. All
// archive entries except the text-carrying parts are copied through
// unchanged. An existing output without overwrite is an idempotent skip.
func FillDocx(templatePath, outPath string, m placeholder.Map, overwrite bool) error {
	if _, err := os.Stat(outPath); err == nil && !overwrite {
		zap.L().Info("render: skipping existing document",
			zap.String("path", outPath),
		)
		return nil
	}

	zr, err := zip.OpenReader(templatePath)
	if err != nil {
		return eris.Wrapf(err, "render: open docx template %s", templatePath)
	}
	defer zr.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", outPath)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, f := range zr.File {
		if err := copyEntry(zw, f, m); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return eris.Wrapf(err, "render: finalize %s", outPath)
	}
	return nil
}

func copyEntry(zw *zip.Writer, f *zip.File, m placeholder.Map) error {
	rc, err := f.Open()
	if err != nil {
		return eris.Wrapf(err, "render: open entry %s", f.Name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return eris.Wrapf(err, "render: read entry %s", f.Name)
	}

	if partNameRe.MatchString(f.Name) {
		data = []byte(fillPart(string(data), m))
	}

	hdr := f.FileHeader
	w, err := zw.CreateHeader(&hdr)
	if err != nil {
		return eris.Wrapf(err, "render: write entry header %s", f.Name)
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrapf(err, "render: write entry %s", f.Name)
	}
	return nil
}

// fillPart substitutes placeholders in every paragraph of one XML part.
func fillPart(xmlPart string, m placeholder.Map) string {
	return paragraphRe.ReplaceAllStringFunc(xmlPart, func(p string) string {
		return fillParagraph(p, m)
	})
}

// fillParagraph joins the paragraph's text nodes into its full visible
// string, substitutes and scrubs, then rewrites the first text node with
// the whole result and blanks the remaining ones. Untouched paragraphs are
// returned byte-identical.
func fillParagraph(p string, m placeholder.Map) string {
	locs := textNodeRe.FindAllStringIndex(p, -1)
	if len(locs) == 0 {
		return p
	}

	var full strings.Builder
	for _, loc := range locs {
		full.WriteString(textNodeInner(p[loc[0]:loc[1]]))
	}
	original := full.String()

	replaced := ReplaceInText(original, m)
	if replaced == original {
		return p
	}

	var b strings.Builder
	prev := 0
	for i, loc := range locs {
		b.WriteString(p[prev:loc[0]])
		if i == 0 {
			b.WriteString(`<w:t xml:space="preserve">` + xmlEscaper.Replace(replaced) + `</w:t>`)
		} else {
			b.WriteString(`<w:t xml:space="preserve"></w:t>`)
		}
		prev = loc[1]
	}
	b.WriteString(p[prev:])
	return b.String()
}

// textNodeInner extracts and unescapes the text content of one w:t node.
func textNodeInner(node string) string {
	match := textInnerRe.FindStringSubmatch(node)
	if match == nil {
		return "" // self-closing <w:t/>
	}
	return xmlUnescaper.Replace(match[1])
}
