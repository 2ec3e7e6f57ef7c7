package richtext

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"blockquote": true, "pre": true, "tr": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var textBlocks = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
	"area": true, "base": true, "col": true, "embed": true, "source": true, "wbr": true,
}

type frame struct {
	tag   string
	prev  Marks
	block bool
}

type parser struct {
	doc       Document
	marks     Marks
	stack     []frame
	needBreak bool
	preDepth  int
}

// Parse reads an HTML fragment into a Document. Unknown tags are transparent.
func Parse(src string) Document {
	p := &parser{doc: NewDocument()}
	z := nethtml.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return p.doc
		case nethtml.TextToken:
			p.text(string(z.Text()))
		case nethtml.StartTagToken:
			name, hasAttr := z.TagName()
			attrs := readAttrs(z, hasAttr)
			p.start(string(name), attrs, false)
		case nethtml.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			attrs := readAttrs(z, hasAttr)
			p.start(string(name), attrs, true)
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			p.end(string(name))
		}
	}
}

func readAttrs(z *nethtml.Tokenizer, more bool) map[string]string {
	attrs := map[string]string{}
	for more {
		var k, v []byte
		k, v, more = z.TagAttr()
		attrs[string(k)] = string(v)
	}
	return attrs
}

func (p *parser) last() *Paragraph {
	return &p.doc.Paragraphs[len(p.doc.Paragraphs)-1]
}

func (p *parser) breakParagraph() {
	p.doc.Paragraphs = append(p.doc.Paragraphs, Paragraph{})
	p.needBreak = false
}

func (p *parser) start(tag string, attrs map[string]string, selfClosing bool) {
	switch tag {
	case "br":
		p.breakParagraph()
		return
	case "hr":
		p.needBreak = true
		return
	}

	block := blockTags[tag]
	if block && (len(*p.last()) > 0 || p.needBreak) {
		p.breakParagraph()
	}
	if selfClosing || voidTags[tag] {
		return
	}

	p.stack = append(p.stack, frame{tag: tag, prev: p.marks, block: block})
	switch tag {
	case "strong", "b":
		p.marks.Bold = true
	case "em", "i":
		p.marks.Italic = true
	case "u":
		p.marks.Underline = true
	case "span":
		if c := styleColor(attrs["style"]); c != "" {
			p.marks.Color = c
		}
	case "a":
		if href := attrs["href"]; href != "" {
			p.marks.Link = href
		}
	case "pre":
		p.preDepth++
	}
}

func (p *parser) end(tag string) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].tag != tag {
			continue
		}
		for j := len(p.stack) - 1; j >= i; j-- {
			if p.stack[j].tag == "pre" {
				p.preDepth--
			}
		}
		f := p.stack[i]
		p.marks = f.prev
		p.stack = p.stack[:i]
		if f.block {
			p.needBreak = true
		}
		return
	}
}

func (p *parser) text(s string) {
	if s == "" {
		return
	}
	if p.preDepth > 0 {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if i > 0 {
				if i == len(lines)-1 && line == "" {
					break
				}
				p.breakParagraph()
			}
			p.appendText(line)
		}
		return
	}
	// Whitespace between blocks is formatting; inside an open text block it
	// is content.
	if strings.TrimSpace(s) == "" && (p.needBreak || (len(*p.last()) == 0 && !p.inTextBlock())) {
		return
	}
	p.appendText(strings.ReplaceAll(s, "\n", " "))
}

// inTextBlock reports whether the innermost open block holds inline text
// directly, as opposed to a container such as a list.
func (p *parser) inTextBlock() bool {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if !p.stack[i].block {
			continue
		}
		return textBlocks[p.stack[i].tag]
	}
	return false
}

func (p *parser) appendText(s string) {
	if s == "" {
		return
	}
	if p.needBreak {
		p.breakParagraph()
	}
	para := p.last()
	for _, r := range s {
		*para = append(*para, Cell{R: r, Marks: p.marks})
	}
}

func styleColor(style string) string {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(k), "color") {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

type openTag struct {
	kind  Kind
	value string
}

func tagsFor(m Marks) []openTag {
	var tags []openTag
	if m.Link != "" {
		tags = append(tags, openTag{Link, m.Link})
	}
	if m.Color != "" {
		tags = append(tags, openTag{Color, m.Color})
	}
	if m.Bold {
		tags = append(tags, openTag{kind: Bold})
	}
	if m.Italic {
		tags = append(tags, openTag{kind: Italic})
	}
	if m.Underline {
		tags = append(tags, openTag{kind: Underline})
	}
	return tags
}

func (t openTag) open() string {
	switch t.kind {
	case Link:
		return `<a href="` + html.EscapeString(t.value) + `">`
	case Color:
		return `<span style="color: ` + html.EscapeString(t.value) + `">`
	case Bold:
		return "<strong>"
	case Italic:
		return "<em>"
	}
	return "<u>"
}

func (t openTag) close() string {
	switch t.kind {
	case Link:
		return "</a>"
	case Color:
		return "</span>"
	case Bold:
		return "</strong>"
	case Italic:
		return "</em>"
	}
	return "</u>"
}

// HTML serializes the document as one <p> per paragraph. An empty document
// serializes to "".
func (d Document) HTML() string {
	if d.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, p := range d.Paragraphs {
		b.WriteString("<p>")
		var open []openTag
		for _, run := range p.Runs() {
			want := tagsFor(run.Marks)
			common := 0
			for common < len(open) && common < len(want) && open[common] == want[common] {
				common++
			}
			for i := len(open) - 1; i >= common; i-- {
				b.WriteString(open[i].close())
			}
			for _, t := range want[common:] {
				b.WriteString(t.open())
			}
			open = want
			b.WriteString(html.EscapeString(run.Text))
		}
		for i := len(open) - 1; i >= 0; i-- {
			b.WriteString(open[i].close())
		}
		b.WriteString("</p>")
	}
	return b.String()
}

// Normalize parses and re-serializes src.
func Normalize(src string) string {
	return Parse(src).HTML()
}
